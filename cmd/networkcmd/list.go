// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ufn network list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the network presets",
		Long: `The network list command prints every network preset. The selected one is
marked, and its rpc url reflects any --rpc-url override.`,
		RunE: listNetworks,
		Args: cobrautils.ExactArgs(0),
	}
}

func listNetworks(*cobra.Command, []string) error {
	ux.Logger.PrintTable(networksTable(
		app.Conf.GetConfigStringValue(constants.ConfigNetworkKey),
		app.Conf.GetConfigStringValue(constants.ConfigRPCURLKey),
	))
	return nil
}

func networksTable(selected string, rpcURL string) table.Writer {
	t := ux.DefaultTable("Networks", table.Row{"Key", "Name", "Chain ID", "RPC URL", "Selected"})
	for _, n := range models.AllNetworks() {
		mark := ""
		if n.Key == selected {
			mark = "*"
			n = n.WithRPCURL(rpcURL)
		}
		t.AppendRow(table.Row{n.Key, n.Name, n.ChainID, n.RPCURL, mark})
	}
	return t
}
