// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/rpc"
)

// RevertReason extracts the Error(string) message carried by a json rpc
// revert error, if any
func RevertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}
	data, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", false
	}
	revertBytes, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil || len(revertBytes) < 4 {
		return "", false
	}
	reason, err := abi.UnpackRevert(revertBytes)
	if err != nil {
		return "", false
	}
	return reason, true
}
