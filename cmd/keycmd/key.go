// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/cobrautils"

	"github.com/spf13/cobra"
)

var app *application.UFN

// ufn key
func NewCmd(injectedApp *application.UFN) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Inspect the configured signers",
		Long: `The key command suite shows the signers ufn would deploy with, read from
private keys, the project .env file or a web3 keystore.`,
		RunE: cobrautils.CommandSuiteUsage,
	}
	app = injectedApp
	// key list
	cmd.AddCommand(newListCmd())
	return cmd
}
