// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.UFN

// ufn contract
func NewCmd(injectedApp *application.UFN) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploy and verify the UrbanForagingNetwork contract",
		Long: `The contract command suite deploys the UrbanForagingNetwork contract from
its compiled artifact and checks already deployed instances.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// contract deploy
	cmd.AddCommand(newDeployCmd())
	// contract verify
	cmd.AddCommand(newVerifyCmd())
	return cmd
}
