// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.UFN

// ufn config
func NewCmd(injectedApp *application.UFN) *cobra.Command {
	app = injectedApp

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for ufn",
		Long:  `Customize configuration for ufn`,
		RunE:  cobrautils.CommandSuiteUsage,
	}

	// set user metrics collection preferences cmd
	cmd.AddCommand(newMetricsCmd())
	return cmd
}
