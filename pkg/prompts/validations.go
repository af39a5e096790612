// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	errEmpty          = errors.New("value can't be empty")
	errInvalidAddress = errors.New("invalid address")
)

func validateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errEmpty
	}
	return nil
}

// ValidateAddress checks [input] is a hex encoded evm address
func ValidateAddress(input string) error {
	if !common.IsHexAddress(input) {
		return errInvalidAddress
	}
	return nil
}
