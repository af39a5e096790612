// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FromKeystore decrypts every web3 secret storage file found in [dir] with
// [passphrase]. Files are read in name order, so geth's UTC--<date> naming
// keeps the oldest account first. Hidden files are ignored.
func FromKeystore(fs afero.Fs, log *zap.Logger, dir string, passphrase string) (*Set, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore dir %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	signers := []*Signer{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		keyJSON, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, err
		}
		k, err := keystore.DecryptKey(keyJSON, passphrase)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt keystore file %s: %w", path, err)
		}
		log.Debug("loaded keystore account", zap.String("file", path), zap.Stringer("address", k.Address))
		signers = append(signers, NewSigner(k.PrivateKey))
	}
	return NewSet(signers...), nil
}
