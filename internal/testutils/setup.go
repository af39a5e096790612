// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"testing"

	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(zap.NewNop(), io.Discard)
	return require.New(t)
}
