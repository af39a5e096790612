// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.UFN

// ufn network
func NewCmd(injectedApp *application.UFN) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Show the supported networks",
		Long:  `The network command suite shows the network presets that can be selected with --network.`,
		RunE:  cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// network list
	cmd.AddCommand(newListCmd())
	return cmd
}
