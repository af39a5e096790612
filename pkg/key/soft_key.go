// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"fmt"
	"strings"

	"github.com/urban-foraging/ufn/pkg/utils"

	"github.com/ethereum/go-ethereum/crypto"
)

const privKeySize = 64

// FromPrivateKeys builds a signer set from hex encoded keys, with or without
// 0x prefix. Duplicates are dropped keeping the first position.
func FromPrivateKeys(hexKeys []string) (*Set, error) {
	signers := make([]*Signer, 0, len(hexKeys))
	for i, hexKey := range hexKeys {
		s, err := decodePrivateKey(hexKey)
		if err != nil {
			return nil, fmt.Errorf("private key #%d: %w", i+1, err)
		}
		signers = append(signers, s)
	}
	return NewSet(signers...), nil
}

func decodePrivateKey(hexKey string) (*Signer, error) {
	hexKey = utils.TrimHexa(strings.TrimSpace(hexKey))
	if len(hexKey) != privKeySize {
		return nil, ErrInvalidPrivateKeyLen
	}
	privKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return NewSigner(privKey), nil
}
