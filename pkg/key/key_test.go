// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"path/filepath"
	"testing"

	"github.com/urban-foraging/ufn/pkg/constants"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// well known hardhat development accounts
const (
	hardhatKey0  = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAddr0 = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	hardhatKey1  = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	hardhatAddr1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestFromPrivateKeys(t *testing.T) {
	tt := []struct {
		name   string
		keys   []string
		addrs  []common.Address
		expErr error
	}{
		{
			name:  "prefixed and unprefixed",
			keys:  []string{hardhatKey0, hardhatKey1},
			addrs: []common.Address{common.HexToAddress(hardhatAddr0), common.HexToAddress(hardhatAddr1)},
		},
		{
			name:  "duplicates keep first position",
			keys:  []string{hardhatKey1, hardhatKey0, "0x" + hardhatKey1},
			addrs: []common.Address{common.HexToAddress(hardhatAddr1), common.HexToAddress(hardhatAddr0)},
		},
		{
			name:   "short key",
			keys:   []string{"0xabcd"},
			expErr: ErrInvalidPrivateKeyLen,
		},
		{
			name:   "not hex",
			keys:   []string{"zz0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"},
			expErr: ErrInvalidPrivateKey,
		},
	}
	for _, tv := range tt {
		t.Run(tv.name, func(t *testing.T) {
			set, err := FromPrivateKeys(tv.keys)
			if tv.expErr != nil {
				require.ErrorIs(t, err, tv.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tv.addrs, set.Addresses())
			primary, err := set.Primary()
			require.NoError(t, err)
			require.Equal(t, tv.addrs[0], primary.Address())
		})
	}
}

func TestEmptySet(t *testing.T) {
	set := NewSet()
	_, err := set.Primary()
	require.ErrorIs(t, err, constants.ErrNoSigners)
	require.Empty(t, set.Addresses())

	var nilSet *Set
	require.Equal(t, 0, nilSet.Len())
}

func TestMerge(t *testing.T) {
	a, err := FromPrivateKeys([]string{hardhatKey0})
	require.NoError(t, err)
	b, err := FromPrivateKeys([]string{hardhatKey1, hardhatKey0})
	require.NoError(t, err)
	merged := a.Merge(b)
	require.Equal(t, []common.Address{common.HexToAddress(hardhatAddr0), common.HexToAddress(hardhatAddr1)}, merged.Addresses())
}

func writeKeystoreFile(t *testing.T, fs afero.Fs, path string, hexKey string, passphrase string) {
	t.Helper()
	privKey, err := crypto.HexToECDSA(hexKey)
	require.NoError(t, err)
	k := &keystore.Key{
		Address:    crypto.PubkeyToAddress(privKey.PublicKey),
		PrivateKey: privKey,
	}
	keyJSON, err := keystore.EncryptKey(k, passphrase, keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, path, keyJSON, constants.WriteReadUserOnlyPerms))
}

func TestFromKeystore(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	dir := "/keystore"
	require.NoError(fs.MkdirAll(dir, constants.DefaultPerms755))
	writeKeystoreFile(t, fs, filepath.Join(dir, "UTC--2024-02-01--b"), hardhatKey1, "pass")
	writeKeystoreFile(t, fs, filepath.Join(dir, "UTC--2024-01-01--a"), hardhatKey0[2:], "pass")
	require.NoError(afero.WriteFile(fs, filepath.Join(dir, ".DS_Store"), []byte("junk"), constants.WriteReadReadPerms))

	set, err := FromKeystore(fs, zap.NewNop(), dir, "pass")
	require.NoError(err)
	require.Equal([]common.Address{common.HexToAddress(hardhatAddr0), common.HexToAddress(hardhatAddr1)}, set.Addresses())

	_, err = FromKeystore(fs, zap.NewNop(), dir, "wrong")
	require.ErrorIs(err, keystore.ErrDecrypt)

	_, err = FromKeystore(fs, zap.NewNop(), "/missing", "pass")
	require.Error(err)
}
