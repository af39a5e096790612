// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrNoSigners        = errors.New("no signer configured: use --private-key, --keystore or set PRIVATE_KEY in .env")
	ErrUnknownNetwork   = errors.New("unknown network")
	ErrNoDeploymentData = errors.New("no deployment record found")
)
