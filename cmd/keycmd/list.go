// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"context"

	"github.com/urban-foraging/ufn/cmd/flags"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/evm"
	"github.com/urban-foraging/ufn/pkg/key"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/utils"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const nativeDecimals = 18

var (
	signerFlags flags.SignerFlags
	noBalances  bool
)

// ufn key list
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured signers",
		Long: `The key list command prints the configured signers in the order they are
used. The first one is the deployer. Balances are read from the selected
network unless --no-balances is given.`,
		RunE: listKeys,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return signerFlags.Bind(app, cmd)
		},
		Args: cobrautils.ExactArgs(0),
	}
	signerFlags.AddToCmd(cmd, "as signers")
	cmd.Flags().BoolVar(&noBalances, "no-balances", false, "do not query the signer balances")
	return cmd
}

func listKeys(cmd *cobra.Command, _ []string) error {
	signers, err := signerFlags.GetSigners(app)
	if err != nil {
		return err
	}
	network, err := flags.GetNetwork(app)
	if err != nil {
		return err
	}
	var client *evm.Client
	if !noBalances {
		client, err = evm.GetClient(cmd.Context(), network.RPCURL, signers)
		if err != nil {
			return err
		}
		defer client.Close()
	}
	t, err := signersTable(cmd.Context(), network, signers, client)
	if err != nil {
		return err
	}
	ux.Logger.PrintTable(t)
	return nil
}

func signersTable(ctx context.Context, network models.Network, signers *key.Set, client *evm.Client) (table.Writer, error) {
	header := table.Row{"#", "Address", "Role"}
	if client != nil {
		header = append(header, "Balance")
	}
	t := ux.DefaultTable("Signers on "+network.Name, header)
	for i, addr := range signers.Addresses() {
		role := ""
		if i == 0 {
			role = "deployer"
		}
		row := table.Row{i, addr.Hex(), role}
		if client != nil {
			balance, err := client.GetAddressBalance(ctx, addr)
			if err != nil {
				return nil, err
			}
			row = append(row, utils.FormatAmount(balance, nativeDecimals))
		}
		t.AppendRow(row)
	}
	return t, nil
}
