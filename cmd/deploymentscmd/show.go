// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploymentscmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/clierrors"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	format       string
	contractName string
)

// ufn deployments show
func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the deployment record of a contract",
		Long: `The deployments show command prints the deployment record of a contract on
the selected network, as text, json or yaml.`,
		RunE: showDeployment,
		Args: cobrautils.ExactArgs(0),
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format [text, json, yaml]")
	cmd.Flags().StringVar(&contractName, constants.ConfigContractKey, constants.DefaultContractName, "name of the deployed contract")
	return cmd
}

func showDeployment(cmd *cobra.Command, _ []string) error {
	network := app.Conf.GetConfigStringValue(constants.ConfigNetworkKey)
	record, err := app.LoadDeploymentRecord(network, artifacts.ContractName(contractName))
	if err != nil {
		return err
	}
	return writeDeployment(cmd.OutOrStdout(), record, format)
}

func writeDeployment(w io.Writer, d models.Deployment, format string) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		ul := ux.New(nil, w)
		ul.PrintToUser("Contract: %s", d.Contract)
		ul.PrintToUser("Network: %s (chain id %d)", d.NetworkName, d.ChainID)
		ul.PrintToUser("Address: %s", d.Address)
		ul.PrintToUser("Transaction hash: %s", d.TxHash)
		ul.PrintToUser("Block: %d", d.BlockNumber)
		ul.PrintToUser("Gas used: %s", ux.ConvertToStringWithThousandSeparator(d.GasUsed))
		ul.PrintToUser("Deployer: %s", d.Deployer)
		if d.CodeVerified {
			ul.GreenCheckmarkToUser("Code verified")
		} else {
			ul.RedXToUser("No code found at address")
		}
		switch {
		case d.SmokeError != "":
			ul.RedXToUser("%s", d.SmokeError)
		case d.SmokeMethod != "":
			ul.PrintToUser("%s: %s", d.SmokeMethod, d.SmokeValue)
		}
		ul.PrintToUser("Recorded at: %s", d.Timestamp.Format(time.RFC3339))
		return nil
	default:
		return fmt.Errorf("%w: %q", clierrors.ErrInvalidOutputFormat, format)
	}
}
