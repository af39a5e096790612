// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/contract"
	"github.com/urban-foraging/ufn/pkg/key"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	ErrNoScheme        = errors.New("rpc url has no scheme")
	ErrReceiptStatus   = errors.New("failed receipt status")
	ErrAddressMismatch = errors.New("receipt contract address does not match the submitted deployment")
)

// Backend is the subset of an evm node api needed to deploy and inspect contracts
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// Deployment is the handle of a submitted contract creation
type Deployment struct {
	Address common.Address
	Tx      *types.Transaction
	From    common.Address
}

type Client struct {
	EthClient Backend
	URL       string
	Keys      *key.Set
	// Confirmations is the number of blocks, counting the inclusion block,
	// to wait for after a deployment is mined
	Confirmations    uint64
	ConfirmationPoll time.Duration
	// OnConfirmation is notified of confirmation progress, if set
	OnConfirmation func(current, target uint64)

	chainID *big.Int
}

func NewClient(backend Backend, rpcURL string, signers *key.Set) *Client {
	return &Client{
		EthClient:        backend,
		URL:              rpcURL,
		Keys:             signers,
		Confirmations:    constants.DefaultConfirmations,
		ConfirmationPoll: constants.ConfirmationPoll,
	}
}

func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else if parsedURL.Scheme == "" {
		return false, nil
	}
	return true, nil
}

// GetClient dials [rpcURL] once. Connection failures are returned to the
// caller as is.
func GetClient(ctx context.Context, rpcURL string, signers *key.Set) (*Client, error) {
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return nil, err
	}
	if !hasScheme {
		return nil, fmt.Errorf("%w: %s (expected http://, https://, ws:// or wss://)", ErrNoScheme, rpcURL)
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failure connecting to %s: %w", rpcURL, err)
	}
	return NewClient(client, rpcURL, signers), nil
}

func (c *Client) Close() {
	if closer, ok := c.EthClient.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return c.chainID, nil
	}
	chainID, err := c.EthClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failure getting chain id from %s: %w", c.URL, err)
	}
	c.chainID = chainID
	return chainID, nil
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.EthClient.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failure getting block number from %s: %w", c.URL, err)
	}
	return n, nil
}

func (c *Client) GetAddressBalance(ctx context.Context, addr common.Address) (*big.Int, error) {
	balance, err := c.EthClient.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failure obtaining balance for %s on %s: %w", addr.Hex(), c.URL, err)
	}
	return balance, nil
}

// CodeAt returns the runtime bytecode stored at [addr] on the latest block
func (c *Client) CodeAt(ctx context.Context, addr common.Address) ([]byte, error) {
	code, err := c.EthClient.CodeAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failure obtaining code for %s on %s: %w", addr.Hex(), c.URL, err)
	}
	return code, nil
}

// Signers returns the addresses available to sign, primary first
func (c *Client) Signers(context.Context) ([]common.Address, error) {
	return c.Keys.Addresses(), nil
}

func (c *Client) GetTxOptsWithSigner(ctx context.Context) (*bind.TransactOpts, error) {
	signer, err := c.Keys.Primary()
	if err != nil {
		return nil, err
	}
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failure generating signer: %w", err)
	}
	txOpts, err := bind.NewKeyedTransactorWithChainID(signer.PrivateKey(), chainID)
	if err != nil {
		return nil, err
	}
	txOpts.Context = ctx
	return txOpts, nil
}

// Deploy submits the contract creation for [bp], signed by the primary
// signer. Gas and fees are left to the node estimates.
func (c *Client) Deploy(ctx context.Context, bp *artifacts.Blueprint, params ...interface{}) (*Deployment, error) {
	txOpts, err := c.GetTxOptsWithSigner(ctx)
	if err != nil {
		return nil, err
	}
	address, tx, _, err := bind.DeployContract(txOpts, bp.ABI, bp.Bytecode, c.EthClient, params...)
	if err != nil {
		return nil, TransactionError(tx, err, "failure deploying %s", bp.Name)
	}
	return &Deployment{
		Address: address,
		Tx:      tx,
		From:    txOpts.From,
	}, nil
}

// WaitForDeployment blocks until the creation transaction is mined with
// success status and has the configured number of confirmations
func (c *Client) WaitForDeployment(ctx context.Context, d *Deployment) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.EthClient, d.Tx)
	if err != nil {
		return nil, TransactionError(d.Tx, err, "failure waiting for deployment to be mined")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, TransactionError(d.Tx, ErrReceiptStatus, "deployment reverted at block %d", receipt.BlockNumber)
	}
	if receipt.ContractAddress != (common.Address{}) && receipt.ContractAddress != d.Address {
		return receipt, TransactionError(d.Tx, ErrAddressMismatch, "receipt reports %s", receipt.ContractAddress.Hex())
	}
	if err := c.waitConfirmations(ctx, receipt.BlockNumber.Uint64()); err != nil {
		return receipt, TransactionError(d.Tx, err, "failure waiting for confirmations")
	}
	return receipt, nil
}

func (c *Client) waitConfirmations(ctx context.Context, minedAt uint64) error {
	target := c.Confirmations
	if target <= 1 {
		return nil
	}
	poll := c.ConfirmationPoll
	if poll <= 0 {
		poll = constants.ConfirmationPoll
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	for {
		head, err := c.BlockNumber(ctx)
		if err != nil {
			return err
		}
		var current uint64
		if head >= minedAt {
			current = head - minedAt + 1
		}
		if c.OnConfirmation != nil {
			c.OnConfirmation(min(current, target), target)
		}
		if current >= target {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// CallMethod executes a read only call described by [methodEsp], eg
// "nextLocationId()->(uint256)"
func (c *Client) CallMethod(
	ctx context.Context,
	contractAddress common.Address,
	methodEsp string,
	params ...interface{},
) ([]interface{}, error) {
	out, err := contract.CallToMethod(ctx, c.EthClient, contractAddress, methodEsp, params...)
	if err != nil {
		if reason, ok := RevertReason(err); ok {
			return nil, fmt.Errorf("%w (reason: %s)", err, reason)
		}
		return nil, err
	}
	return out, nil
}

func TransactionError(tx *types.Transaction, err error, msg string, args ...interface{}) error {
	msgSuffix := ": %w"
	if tx != nil {
		msgSuffix += fmt.Sprintf(" (txHash=%s)", tx.Hash().String())
	} else {
		msgSuffix += " (tx failed to be submitted)"
	}
	args = append(args, err)
	return fmt.Errorf(msg+msgSuffix, args...)
}
