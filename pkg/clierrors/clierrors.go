// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import "errors"

var (
	ErrNoRecord            = errors.New("failed to find a deployment record for this contract, has it been deployed on this network?\nyou can pass the contract address explicitly to 'ufn contract verify'")
	ErrInvalidAddress      = errors.New("invalid contract address")
	ErrNoRecordedDeployer  = errors.New("the deployment record has no deployer address, pass --private-key or --keystore")
	ErrMutuallyExclusive   = errors.New("--private-key and --keystore are mutually exclusive")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected text, json or yaml")
)
