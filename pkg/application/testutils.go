// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"testing"

	"github.com/urban-foraging/ufn/pkg/config"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewTestApp returns an app rooted in a temp dir, backed by an in memory fs
func NewTestApp(t *testing.T) *UFN {
	return &UFN{
		baseDir: t.TempDir(),
		Log:     zap.NewNop(),
		Conf:    config.New(),
		Fs:      afero.NewMemMapFs(),
	}
}
