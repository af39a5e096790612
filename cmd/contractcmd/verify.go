// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/urban-foraging/ufn/cmd/flags"
	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/clierrors"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/deployer"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/prompts"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

type VerifyFlags struct {
	Signers      flags.SignerFlags
	contractName string
	smokeMethod  string
	strictVerify bool
}

var verifyFlags VerifyFlags

// ufn contract verify
func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [address]",
		Short: "Check an already deployed contract",
		Long: `The contract verify command checks there is code at the given address,
prints the deployment details and calls a read only method of the contract.

If no address is given, the one in the deployment record of the selected
network is used, and the record is updated with the outcome.`,
		RunE:    verifyContract,
		PreRunE: bindVerifyFlags,
		Args:    cobrautils.MaximumNArgs(1),
	}
	verifyFlags.Signers.AddToCmd(cmd, "as the reported deployer")
	cmd.Flags().StringVar(&verifyFlags.contractName, constants.ConfigContractKey, constants.DefaultContractName, "name of the deployed contract")
	cmd.Flags().StringVar(&verifyFlags.smokeMethod, constants.ConfigSmokeMethodKey, constants.DefaultSmokeMethod, "read only method called to check the contract")
	cmd.Flags().BoolVar(&verifyFlags.strictVerify, constants.ConfigStrictVerifyKey, false, "fail if no code is found at the address")
	return cmd
}

func bindVerifyFlags(cmd *cobra.Command, _ []string) error {
	if err := app.Conf.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	return verifyFlags.Signers.Bind(app, cmd)
}

func verifyContract(cmd *cobra.Command, args []string) error {
	network, err := flags.GetNetwork(app)
	if err != nil {
		return err
	}
	contractName := artifacts.ContractName(app.Conf.GetConfigStringValue(constants.ConfigContractKey))
	record, err := app.LoadDeploymentRecord(network.Key, contractName)
	hasRecord := err == nil
	if err != nil && !errors.Is(err, constants.ErrNoDeploymentData) {
		return err
	}

	var address common.Address
	switch {
	case len(args) == 1:
		if err := prompts.ValidateAddress(args[0]); err != nil {
			return fmt.Errorf("%w: %s", clierrors.ErrInvalidAddress, args[0])
		}
		address = common.HexToAddress(args[0])
	case hasRecord:
		address = common.HexToAddress(record.Address)
	case canPrompt():
		ux.Logger.PrintToUser("No deployment record of %s found for %s", contractName, network.Name)
		address, err = app.Prompt.CaptureAddress("Contract address")
		if err != nil {
			return err
		}
	default:
		return clierrors.ErrNoRecord
	}
	// the record is only refreshed when it describes the checked contract
	hasRecord = hasRecord && common.HexToAddress(record.Address) == address

	signers, err := verifyFlags.Signers.GetSigners(app)
	if err != nil && !(errors.Is(err, constants.ErrNoSigners) && hasRecord) {
		return err
	}
	client, err := connect(cmd.Context(), network, signers)
	if err != nil {
		return err
	}
	defer client.Close()

	var chain deployer.Chain = client
	if signers.Len() == 0 {
		if !common.IsHexAddress(record.Deployer) || common.HexToAddress(record.Deployer) == (common.Address{}) {
			return clierrors.ErrNoRecordedDeployer
		}
		chain = recordedDeployer{Chain: client, address: common.HexToAddress(record.Deployer)}
	}
	// verification only queries the chain, no artifact is loaded
	res, err := deployer.New(deployerConfig(network), nil, chain, ux.Logger).Verify(cmd.Context(), address)
	if err != nil {
		return err
	}
	if hasRecord {
		return saveVerification(res, &record)
	}
	return nil
}

func saveVerification(res *deployer.Result, record *models.Deployment) error {
	res.Merge(record, time.Now())
	return app.WriteDeploymentRecord(record)
}
