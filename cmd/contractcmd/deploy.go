// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"fmt"
	"time"

	"github.com/urban-foraging/ufn/cmd/flags"
	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/deployer"
	"github.com/urban-foraging/ufn/pkg/utils"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/spf13/cobra"
)

type DeployFlags struct {
	Signers       flags.SignerFlags
	contractName  string
	artifactsDir  string
	smokeMethod   string
	confirmations uint64
	timeout       time.Duration
	strictVerify  bool
	noRecord      bool
	yes           bool
}

var deployFlags DeployFlags

// ufn contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the UrbanForagingNetwork contract",
		Long: `The contract deploy command deploys the compiled contract to the selected
network, waits for the deployment to be confirmed, checks there is code at
the new address and calls a read only method of the contract.

The deployment is sent from the first configured signer. Private keys can be
given with --private-key, UFN_PRIVATE_KEYS or the PRIVATE_KEY entry of the
project .env file.`,
		RunE:    deployContract,
		PreRunE: bindDeployFlags,
		Args:    cobrautils.ExactArgs(0),
	}
	deployFlags.Signers.AddToCmd(cmd, "to deploy the contract")
	cmd.Flags().StringVar(&deployFlags.contractName, constants.ConfigContractKey, constants.DefaultContractName, "name of the contract to deploy, optionally as Source.sol:Name")
	cmd.Flags().StringVar(&deployFlags.artifactsDir, constants.ConfigArtifactsKey, constants.DefaultArtifactsDir, "hardhat artifacts or foundry out directory")
	cmd.Flags().StringVar(&deployFlags.smokeMethod, constants.ConfigSmokeMethodKey, constants.DefaultSmokeMethod, "read only method called to check the deployed contract")
	cmd.Flags().Uint64Var(&deployFlags.confirmations, constants.ConfigConfirmationsKey, constants.DefaultConfirmations, "number of blocks to wait for, counting the inclusion block")
	cmd.Flags().DurationVar(&deployFlags.timeout, constants.ConfigTimeoutKey, constants.DefaultTimeout, "maximum time to wait for the deployment to be confirmed (0 waits forever)")
	cmd.Flags().BoolVar(&deployFlags.strictVerify, constants.ConfigStrictVerifyKey, false, "fail if no code is found at the deployed address")
	cmd.Flags().BoolVar(&deployFlags.noRecord, "no-record", false, "do not save a deployment record")
	cmd.Flags().BoolVarP(&deployFlags.yes, "yes", "y", false, "do not ask for confirmation before deploying to mainnet")
	return cmd
}

func bindDeployFlags(cmd *cobra.Command, _ []string) error {
	if err := app.Conf.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	return deployFlags.Signers.Bind(app, cmd)
}

func deployContract(cmd *cobra.Command, _ []string) error {
	network, err := flags.GetNetwork(app)
	if err != nil {
		return err
	}
	if network.IsMainnet() && !deployFlags.yes {
		yes, err := app.Prompt.CaptureNoYes(fmt.Sprintf("Deploy to %s? This will spend real funds", network.Name))
		if err != nil {
			return err
		}
		if !yes {
			ux.Logger.PrintToUser("Deployment cancelled")
			return nil
		}
	}
	signers, err := deployFlags.Signers.GetSigners(app)
	if err != nil {
		return reportFailure(err)
	}
	client, err := connect(cmd.Context(), network, signers)
	if err != nil {
		return reportFailure(err)
	}
	defer client.Close()
	if confirmations := app.Conf.GetConfigUint64Value(constants.ConfigConfirmationsKey); confirmations > 0 {
		client.Confirmations = confirmations
	}
	if client.Confirmations > 1 {
		client.OnConfirmation = ux.Logger.ConfirmationsBar("Confirmations")
	}

	store := artifacts.NewStore(app.Fs, utils.GetRealFilePath(app.Conf.GetConfigStringValue(constants.ConfigArtifactsKey)))
	cfg := deployerConfig(network)
	if cfg.ConfirmTimeout > 0 {
		app.Log.Info(fmt.Sprintf("confirmation wait bounded to %s", ux.FormatDuration(cfg.ConfirmTimeout)))
	}
	res, err := deployer.New(cfg, pickingStore{Store: store}, client, ux.Logger).Run(cmd.Context())
	if res != nil && res.State >= deployer.StateConfirmed && !deployFlags.noRecord {
		// confirmed deployments are recorded even if a later check failed,
		// so they can be verified again
		if recordErr := app.WriteDeploymentRecord(res.Record(time.Now())); recordErr != nil {
			ux.Logger.RedXToUser("failure saving deployment record: %s", recordErr)
		} else {
			app.Log.Info("deployment record saved: " + app.GetDeploymentRecordPath(network.Key, res.ContractName))
		}
	}
	if err != nil {
		return reportFailure(err)
	}
	return nil
}
