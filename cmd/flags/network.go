// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"
	"os"
	"strings"

	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"

	"github.com/spf13/cobra"
)

const (
	NetworkFlagName = "network"
	RPCURLFlagName  = "rpc-url"
)

// AddNetworkFlags adds the persistent network selection flags to [cmd] and
// binds them to the config, so env vars and the config file can set them too
func AddNetworkFlags(app *application.UFN, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(
		NetworkFlagName,
		constants.DefaultNetworkKey,
		fmt.Sprintf("network preset to use [%s]", strings.Join(models.NetworkKeys(), ", ")),
	)
	cmd.PersistentFlags().String(
		RPCURLFlagName,
		"",
		"rpc endpoint to use instead of the network preset one",
	)
	if err := app.Conf.BindFlag(constants.ConfigNetworkKey, cmd.PersistentFlags().Lookup(NetworkFlagName)); err != nil {
		return err
	}
	return app.Conf.BindFlag(constants.ConfigRPCURLKey, cmd.PersistentFlags().Lookup(RPCURLFlagName))
}

// GetNetwork resolves the selected network preset. Its rpc url is overridden
// by the rpc-url config, or else by the hardhat env var of the preset
func GetNetwork(app *application.UFN) (models.Network, error) {
	network, err := models.NetworkFromKey(app.Conf.GetConfigStringValue(constants.ConfigNetworkKey))
	if err != nil {
		return models.Network{}, err
	}
	rpcURL := app.Conf.GetConfigStringValue(constants.ConfigRPCURLKey)
	if rpcURL == "" && network.RPCURLEnv != "" {
		rpcURL = strings.TrimSpace(os.Getenv(network.RPCURLEnv))
	}
	return network.WithRPCURL(rpcURL), nil
}
