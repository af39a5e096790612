// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/spf13/cobra"
)

const (
	enable  = "enable"
	disable = "disable"
)

// ufn config metrics
func newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "metrics [enable | disable]",
		Short:     "opt in or out of metrics collection",
		Long:      "set user metrics collection preferences",
		RunE:      handleMetricsSettings,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{enable, disable},
	}
}

func handleMetricsSettings(_ *cobra.Command, args []string) error {
	switch args[0] {
	case enable:
		if err := app.Conf.SetConfigValue(constants.ConfigMetricsEnabledKey, true); err != nil {
			return err
		}
		ux.Logger.PrintToUser("Thank you for opting in ufn usage metrics collection")
	case disable:
		if err := app.Conf.SetConfigValue(constants.ConfigMetricsEnabledKey, false); err != nil {
			return err
		}
		ux.Logger.PrintToUser("ufn usage metrics will no longer be collected")
	default:
		return fmt.Errorf("invalid metrics argument %q", args[0])
	}
	return nil
}
