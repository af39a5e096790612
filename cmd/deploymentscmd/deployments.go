// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploymentscmd

import (
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.UFN

// ufn deployments
func NewCmd(injectedApp *application.UFN) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployments",
		Short: "Show recorded deployments",
		Long: `The deployments command suite shows the deployment records saved by
ufn contract deploy under ~/.ufn/deployments.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// deployments list
	cmd.AddCommand(newListCmd())
	// deployments show
	cmd.AddCommand(newShowCmd())
	return cmd
}
