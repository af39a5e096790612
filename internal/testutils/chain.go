// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/require"
)

const (
	// runtime returns uint256(1) for any call
	CounterInitCode = "600a600c600039600a6000f3" + "600160005260206000f3"
	// constructor returns no runtime code
	EmptyInitCode = "60006000f3"
	// runtime reverts on any call
	RevertingInitCode = "6005600c60003960056000f3" + "60006000fd"

	NextLocationIDABI = `[{"inputs":[],"name":"nextLocationId","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}]`
)

// SimulatedChain is an in process chain that mines a block for every
// accepted transaction
type SimulatedChain struct {
	simulated.Client
	Backend *simulated.Backend
	Keys    []*ecdsa.PrivateKey
	// MineOnBlockNumber seals an empty block on every BlockNumber query,
	// so confirmation waits make progress
	MineOnBlockNumber bool
}

func NewSimulatedChain(t *testing.T, numKeys int) *SimulatedChain {
	t.Helper()
	keys := make([]*ecdsa.PrivateKey, numKeys)
	alloc := types.GenesisAlloc{}
	balance := new(big.Int).Mul(big.NewInt(1000), big.NewInt(params.Ether))
	for i := range keys {
		k, err := crypto.GenerateKey()
		require.NoError(t, err)
		keys[i] = k
		alloc[crypto.PubkeyToAddress(k.PublicKey)] = types.Account{Balance: balance}
	}
	backend := simulated.NewBackend(alloc)
	t.Cleanup(func() { _ = backend.Close() })
	return &SimulatedChain{
		Client:  backend.Client(),
		Backend: backend,
		Keys:    keys,
	}
}

func (c *SimulatedChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.Backend.Commit()
	return nil
}

func (c *SimulatedChain) BlockNumber(ctx context.Context) (uint64, error) {
	if c.MineOnBlockNumber {
		c.Backend.Commit()
	}
	return c.Client.BlockNumber(ctx)
}

func (c *SimulatedChain) Address(i int) common.Address {
	return crypto.PubkeyToAddress(c.Keys[i].PublicKey)
}

// HexKeys returns the funded private keys hex encoded
func (c *SimulatedChain) HexKeys() []string {
	hexKeys := make([]string, 0, len(c.Keys))
	for _, k := range c.Keys {
		hexKeys = append(hexKeys, hex.EncodeToString(crypto.FromECDSA(k)))
	}
	return hexKeys
}

func MustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
