// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"

	"github.com/urban-foraging/ufn/pkg/constants"
)

// IsE2E checks if the environment variable "RUN_UFN_E2E" is set and returns true if it is, false otherwise.
func IsE2E() bool {
	return os.Getenv(constants.E2EEnvVar) != ""
}
