// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deployer drives a single contract deployment: it loads the
// blueprint, submits the creation transaction, waits for it, checks the
// deployed code, reports the deployment and smoke tests an accessor.
package deployer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/evm"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/utils"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=deployer.go -destination=../../internal/mocks/deployer.go -package=mocks Artifacts,Chain

type Artifacts interface {
	Load(name string) (*artifacts.Blueprint, error)
}

type Chain interface {
	Deploy(ctx context.Context, bp *artifacts.Blueprint, params ...interface{}) (*evm.Deployment, error)
	WaitForDeployment(ctx context.Context, d *evm.Deployment) (*types.Receipt, error)
	CodeAt(ctx context.Context, addr common.Address) ([]byte, error)
	Signers(ctx context.Context) ([]common.Address, error)
	CallMethod(ctx context.Context, addr common.Address, methodEsp string, params ...interface{}) ([]interface{}, error)
}

type Config struct {
	ContractName string
	// SmokeMethod is a read only method spec, eg "nextLocationId()->(uint256)"
	SmokeMethod string
	Network     models.Network
	// ConfirmTimeout bounds the confirmation wait. Zero waits forever.
	ConfirmTimeout time.Duration
	// StrictVerify makes a missing deployed code fatal
	StrictVerify bool
}

type Result struct {
	State        State
	ContractName string
	Network      models.Network
	Address      common.Address
	TxHash       common.Hash
	BlockNumber  uint64
	GasUsed      uint64
	Deployer     common.Address
	CodeVerified bool
	SmokeMethod  string
	SmokeValue   string
	SmokeErr     error
	Warning      *VerificationWarning
}

type Deployer struct {
	cfg       Config
	artifacts Artifacts
	chain     Chain
	log       *ux.UserLog
}

func New(cfg Config, store Artifacts, chain Chain, log *ux.UserLog) *Deployer {
	if cfg.ContractName == "" {
		cfg.ContractName = constants.DefaultContractName
	}
	if cfg.SmokeMethod == "" {
		cfg.SmokeMethod = constants.DefaultSmokeMethod
	}
	if cfg.Network.Name == "" {
		cfg.Network = models.CoreTestnet
	}
	if log == nil {
		log = ux.Logger
	}
	return &Deployer{
		cfg:       cfg,
		artifacts: store,
		chain:     chain,
		log:       log,
	}
}

// Run performs the whole deployment. Only blueprint, submission,
// confirmation and chain query failures are returned as errors. A missing
// code at the deployed address is returned only in strict mode, and smoke
// test failures never are.
func (d *Deployer) Run(ctx context.Context) (*Result, error) {
	res := &Result{
		State:        StateStart,
		ContractName: artifacts.ContractName(d.cfg.ContractName),
		Network:      d.cfg.Network,
		SmokeMethod:  d.cfg.SmokeMethod,
	}

	bp, err := d.artifacts.Load(d.cfg.ContractName)
	if err != nil {
		return res, &BlueprintNotFoundError{Name: d.cfg.ContractName, Err: err}
	}
	if bp.Name != "" {
		res.ContractName = bp.Name
	}
	res.State = StateFactoryAcquired

	d.log.PrintToUser("Deploying %s contract to %s...", res.ContractName, d.cfg.Network.Name)
	deployment, err := d.chain.Deploy(ctx, bp)
	if err != nil {
		return res, &SubmissionError{Err: err}
	}
	res.State = StateSubmitted
	d.log.Info("deployment submitted: address=%s tx=%s", deployment.Address.Hex(), deployment.Tx.Hash().Hex())

	receipt, err := d.awaitConfirmation(ctx, deployment)
	if err != nil {
		return res, &ConfirmationError{TxHash: deployment.Tx.Hash(), Err: err}
	}
	res.State = StateConfirmed
	res.Address = deployment.Address
	res.TxHash = deployment.Tx.Hash()
	res.BlockNumber = receipt.BlockNumber.Uint64()
	res.GasUsed = receipt.GasUsed

	d.log.PrintToUser("%s contract deployed to: %s", res.ContractName, res.Address.Hex())
	d.log.PrintToUser("Transaction hash: %s", res.TxHash.Hex())
	d.log.PrintToUser("Gas used: %s (block %d)", ux.ConvertToStringWithThousandSeparator(res.GasUsed), res.BlockNumber)

	if err := d.verifyAndReport(ctx, res); err != nil {
		return res, err
	}
	res.State = StateTerminated
	return res, nil
}

// Verify runs the post deployment checks against an already deployed [addr]
func (d *Deployer) Verify(ctx context.Context, addr common.Address) (*Result, error) {
	res := &Result{
		State:        StateConfirmed,
		ContractName: artifacts.ContractName(d.cfg.ContractName),
		Network:      d.cfg.Network,
		Address:      addr,
		SmokeMethod:  d.cfg.SmokeMethod,
	}
	if err := d.verifyAndReport(ctx, res); err != nil {
		return res, err
	}
	res.State = StateTerminated
	return res, nil
}

func (d *Deployer) awaitConfirmation(ctx context.Context, deployment *evm.Deployment) (*types.Receipt, error) {
	waitCtx, cancel := utils.WithOptionalTimeout(ctx, d.cfg.ConfirmTimeout)
	defer cancel()
	done := d.log.Wait("Waiting for transaction %s to be confirmed...", deployment.Tx.Hash().Hex())
	receipt, err := d.chain.WaitForDeployment(waitCtx, deployment)
	done(err)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && d.cfg.ConfirmTimeout > 0 {
		return nil, fmt.Errorf("not confirmed after %s: %w", d.cfg.ConfirmTimeout, err)
	}
	return receipt, err
}

func (d *Deployer) verifyAndReport(ctx context.Context, res *Result) error {
	d.log.PrintToUser("Verifying deployment...")
	code, err := d.chain.CodeAt(ctx, res.Address)
	if err != nil {
		return fmt.Errorf("failure verifying deployment: %w", err)
	}
	if len(code) == 0 {
		res.Warning = &VerificationWarning{Address: res.Address}
		d.log.RedXToUser("Contract deployment failed - no code at address")
		if d.cfg.StrictVerify {
			return res.Warning
		}
	} else {
		res.CodeVerified = true
		d.log.GreenCheckmarkToUser("Contract successfully deployed and verified")
	}
	res.State = StateVerified

	signers, err := d.chain.Signers(ctx)
	if err != nil {
		return fmt.Errorf("failure obtaining signers: %w", err)
	}
	if len(signers) == 0 {
		return constants.ErrNoSigners
	}
	res.Deployer = signers[0]
	d.log.PrintToUser("")
	d.log.PrintToUser("=== Contract Details ===")
	d.log.PrintToUser("Contract Address: %s", res.Address.Hex())
	d.log.PrintToUser("Network: %s", res.Network.Name)
	d.log.PrintToUser("Chain ID: %d", res.Network.ChainID)
	d.log.PrintToUser("Deployer Address: %s", res.Deployer.Hex())
	res.State = StateReported

	d.smokeTest(ctx, res)
	return nil
}

func (d *Deployer) smokeTest(ctx context.Context, res *Result) {
	name := methodName(d.cfg.SmokeMethod)
	out, err := d.chain.CallMethod(ctx, res.Address, d.cfg.SmokeMethod)
	if err != nil {
		res.SmokeErr = &SmokeTestError{Method: name, Err: err}
		d.log.RedXToUser("Error testing contract functionality: %s", err)
		return
	}
	res.SmokeValue = formatOutputs(out)
	d.log.PrintToUser("Initial %s: %s", name, res.SmokeValue)
	d.log.GreenCheckmarkToUser("Contract is functional and ready to use")
}

func methodName(methodEsp string) string {
	if i := strings.Index(methodEsp, "("); i != -1 {
		return methodEsp[:i]
	}
	return methodEsp
}

func formatOutputs(out []interface{}) string {
	return strings.Join(utils.Map(out, func(v interface{}) string {
		return fmt.Sprint(v)
	}), ", ")
}
