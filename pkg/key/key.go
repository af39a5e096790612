// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package key loads the evm signers used to send deployments.
package key

import (
	"crypto/ecdsa"
	"errors"

	"github.com/urban-foraging/ufn/pkg/constants"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrInvalidPrivateKey    = errors.New("invalid private key")
	ErrInvalidPrivateKeyLen = errors.New("invalid private key length (expect 64 bytes in hex)")
)

// Signer is an account able to sign evm transactions
type Signer struct {
	address common.Address
	privKey *ecdsa.PrivateKey
}

func NewSigner(privKey *ecdsa.PrivateKey) *Signer {
	return &Signer{
		address: crypto.PubkeyToAddress(privKey.PublicKey),
		privKey: privKey,
	}
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) PrivateKey() *ecdsa.PrivateKey {
	return s.privKey
}

// Set is an ordered list of signers. The first one is the primary signer.
type Set struct {
	signers []*Signer
}

// NewSet keeps the first occurrence of every address
func NewSet(signers ...*Signer) *Set {
	seen := map[common.Address]bool{}
	set := &Set{}
	for _, s := range signers {
		if s == nil || seen[s.address] {
			continue
		}
		seen[s.address] = true
		set.signers = append(set.signers, s)
	}
	return set
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.signers)
}

func (s *Set) Primary() (*Signer, error) {
	if s.Len() == 0 {
		return nil, constants.ErrNoSigners
	}
	return s.signers[0], nil
}

func (s *Set) Addresses() []common.Address {
	addrs := make([]common.Address, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		addrs = append(addrs, s.signers[i].address)
	}
	return addrs
}

// Merge appends the signers of [other] that are not already in [s]
func (s *Set) Merge(other *Set) *Set {
	var all []*Signer
	if s != nil {
		all = append(all, s.signers...)
	}
	if other != nil {
		all = append(all, other.signers...)
	}
	return NewSet(all...)
}
