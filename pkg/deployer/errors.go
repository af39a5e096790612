// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// BlueprintNotFoundError means the contract artifact could not be loaded
type BlueprintNotFoundError struct {
	Name string
	Err  error
}

func (e *BlueprintNotFoundError) Error() string {
	return fmt.Sprintf("could not obtain %s contract blueprint: %v", e.Name, e.Err)
}

func (e *BlueprintNotFoundError) Unwrap() error {
	return e.Err
}

// SubmissionError means the deployment transaction was not accepted by the node
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("deployment submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// ConfirmationError means the deployment was submitted but never confirmed
type ConfirmationError struct {
	TxHash common.Hash
	Err    error
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("deployment %s was not confirmed: %v", e.TxHash.Hex(), e.Err)
}

func (e *ConfirmationError) Unwrap() error {
	return e.Err
}

// VerificationWarning means the chain reports no code at the deployed address.
// Only fatal in strict mode.
type VerificationWarning struct {
	Address common.Address
}

func (e *VerificationWarning) Error() string {
	return fmt.Sprintf("no code at address %s", e.Address.Hex())
}

// SmokeTestError means the read only accessor call failed. Never fatal.
type SmokeTestError struct {
	Method string
	Err    error
}

func (e *SmokeTestError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Method, e.Err)
}

func (e *SmokeTestError) Unwrap() error {
	return e.Err
}
