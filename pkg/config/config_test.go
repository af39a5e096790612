// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/urban-foraging/ufn/pkg/constants"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	assert := assert.New(t)
	cf := New()

	assert.Equal(constants.DefaultNetworkKey, cf.GetConfigStringValue(constants.ConfigNetworkKey))
	assert.Equal(constants.DefaultContractName, cf.GetConfigStringValue(constants.ConfigContractKey))
	assert.Equal(uint64(1), cf.GetConfigUint64Value(constants.ConfigConfirmationsKey))
	assert.Equal(10*time.Minute, cf.GetConfigDurationValue(constants.ConfigTimeoutKey))
	assert.False(cf.GetConfigBoolValue(constants.ConfigMetricsEnabledKey))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("UFN_RPC_URL", "http://127.0.0.1:9545")
	t.Setenv("UFN_PRIVATE_KEYS", "0x01,0x02")
	cf := New()

	require.Equal(t, "http://127.0.0.1:9545", cf.GetConfigStringValue(constants.ConfigRPCURLKey))
	require.Equal(t, []string{"0x01", "0x02"}, cf.GetPrivateKeys())
}

func TestHardhatPrivateKeyFallback(t *testing.T) {
	t.Setenv(constants.HardhatPrivateKeyEnv, "0xaa")
	cf := New()
	require.Equal(t, []string{"0xaa"}, cf.GetPrivateKeys())
}

func TestFlagsTakePrecedence(t *testing.T) {
	t.Setenv("UFN_NETWORK", "core_mainnet")
	cf := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(constants.ConfigNetworkKey, constants.DefaultNetworkKey, "")
	flags.StringSlice("private-key", nil, "")
	require.NoError(t, cf.BindFlags(flags))
	require.NoError(t, cf.BindFlag(constants.ConfigPrivateKeysKey, flags.Lookup("private-key")))

	// env wins over flag default
	require.Equal(t, "core_mainnet", cf.GetConfigStringValue(constants.ConfigNetworkKey))

	require.NoError(t, flags.Parse([]string{"--network", "localhost", "--private-key", "0x03", "--private-key", "0x04"}))
	require.Equal(t, "localhost", cf.GetConfigStringValue(constants.ConfigNetworkKey))
	require.Equal(t, []string{"0x03", "0x04"}, cf.GetPrivateKeys())
}

func TestLoadDotEnv(t *testing.T) {
	const (
		setKey   = "UFN_TEST_DOTENV_SET"
		unsetKey = "UFN_TEST_DOTENV_UNSET"
	)
	t.Setenv(setKey, "from-env")
	// registers cleanup for the var LoadDotEnv is about to set
	t.Setenv(unsetKey, "")
	require.NoError(t, os.Unsetenv(unsetKey))

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/.env", []byte(setKey+"=from-file\n"+unsetKey+"=from-file\n"), 0o644))

	cf := New()
	require.NoError(t, cf.LoadDotEnv(zap.NewNop(), fs, "/project/.env", "/project/missing.env"))
	require.Equal(t, "from-env", os.Getenv(setKey))
	require.Equal(t, "from-file", os.Getenv(unsetKey))
}

func TestSetConfigValuePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", constants.ConfigFileName)
	cf := New()
	cf.SetConfig(zap.NewNop(), path)
	require.NoError(t, cf.SetConfigValue(constants.ConfigMetricsEnabledKey, true))
	require.FileExists(t, path)

	reloaded := New()
	reloaded.SetConfig(zap.NewNop(), path)
	require.True(t, reloaded.GetConfigBoolValue(constants.ConfigMetricsEnabledKey))
}
