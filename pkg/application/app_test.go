// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	require := require.New(t)
	app := New()
	app.Setup("/home/user/.ufn", nil, nil, nil, nil)

	require.Equal("/home/user/.ufn", app.GetBaseDir())
	require.Equal(filepath.Join("/home/user/.ufn", "logs"), app.GetLogDir())
	require.Equal(filepath.Join("/home/user/.ufn", "config.json"), app.GetConfigPath())
	require.Equal(
		filepath.Join("/home/user/.ufn", "deployments", "core_testnet", "UrbanForagingNetwork.json"),
		app.GetDeploymentRecordPath("core_testnet", "UrbanForagingNetwork"),
	)
}

func TestNewTestApp(t *testing.T) {
	app := NewTestApp(t)
	require.NotEmpty(t, app.GetBaseDir())
	require.NotNil(t, app.Fs)
	require.NotNil(t, app.Conf)
}
