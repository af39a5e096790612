// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploymentscmd

import (
	"time"

	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var allNetworks bool

// ufn deployments list
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded deployments",
		Long: `The deployments list command prints the deployment records of the selected
network, or of every network with --all-networks.`,
		RunE: listDeployments,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().BoolVar(&allNetworks, "all-networks", false, "list the deployments of every network")
	return cmd
}

func listDeployments(*cobra.Command, []string) error {
	network := app.Conf.GetConfigStringValue(constants.ConfigNetworkKey)
	if allNetworks {
		network = ""
	}
	records, err := app.GetDeploymentRecords(network)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		ux.Logger.PrintToUser("No deployments recorded yet")
		return nil
	}
	ux.Logger.PrintTable(deploymentsTable(records, time.Now()))
	return nil
}

func deploymentsTable(records []models.Deployment, now time.Time) table.Writer {
	t := ux.DefaultTable("Deployments", table.Row{"Contract", "Network", "Address", "Verified", "Age"})
	for _, d := range records {
		verified := "no"
		if d.CodeVerified {
			verified = "yes"
		}
		t.AppendRow(table.Row{
			d.Contract,
			d.NetworkName,
			d.Address,
			verified,
			ux.FormatDuration(now.Sub(d.Timestamp).Truncate(time.Second)),
		})
	}
	return t
}
