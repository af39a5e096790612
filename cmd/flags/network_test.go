// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"

	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/constants"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestGetNetwork(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		key     string
		rpcURL  string
		chainID uint64
		expErr  error
	}{
		{
			name:    "default",
			key:     constants.CoreTestnetKey,
			rpcURL:  constants.CoreTestnetRPCURL,
			chainID: 1114,
		},
		{
			name:    "flag",
			args:    []string{"--network", "localhost"},
			key:     constants.LocalhostKey,
			rpcURL:  constants.LocalhostRPCURL,
			chainID: 31337,
		},
		{
			name:    "env with rpc override",
			env:     map[string]string{"UFN_NETWORK": "core_mainnet", "UFN_RPC_URL": "https://archive.coredao.org"},
			key:     constants.CoreMainnetKey,
			rpcURL:  "https://archive.coredao.org",
			chainID: 1116,
		},
		{
			name:    "hardhat env",
			env:     map[string]string{constants.CoreTestnetRPCURLEnv: "https://my-private-core-node.example"},
			key:     constants.CoreTestnetKey,
			rpcURL:  "https://my-private-core-node.example",
			chainID: 1114,
		},
		{
			name:    "rpc-url wins over hardhat env",
			args:    []string{"--rpc-url", "http://127.0.0.1:9650"},
			env:     map[string]string{constants.CoreTestnetRPCURLEnv: "https://my-private-core-node.example"},
			key:     constants.CoreTestnetKey,
			rpcURL:  "http://127.0.0.1:9650",
			chainID: 1114,
		},
		{
			name:    "hardhat env of another network",
			args:    []string{"--network", "core_mainnet"},
			env:     map[string]string{constants.CoreTestnetRPCURLEnv: "https://my-private-core-node.example"},
			key:     constants.CoreMainnetKey,
			rpcURL:  constants.CoreMainnetRPCURL,
			chainID: 1116,
		},
		{
			name:   "unknown",
			args:   []string{"--network", "fuji"},
			expErr: constants.ErrUnknownNetwork,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("UFN_NETWORK", "")
			t.Setenv("UFN_RPC_URL", "")
			t.Setenv(constants.CoreTestnetRPCURLEnv, "")
			t.Setenv(constants.CoreMainnetRPCURLEnv, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			app := application.NewTestApp(t)
			cmd := &cobra.Command{Use: "ufn"}
			require.NoError(t, AddNetworkFlags(app, cmd))
			require.NoError(t, cmd.ParseFlags(tt.args))

			network, err := GetNetwork(app)
			if tt.expErr != nil {
				require.ErrorIs(t, err, tt.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.key, network.Key)
			require.Equal(t, tt.rpcURL, network.RPCURL)
			require.Equal(t, tt.chainID, network.ChainID)
		})
	}
}
