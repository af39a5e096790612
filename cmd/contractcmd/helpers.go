// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"context"
	"errors"

	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/deployer"
	"github.com/urban-foraging/ufn/pkg/evm"
	"github.com/urban-foraging/ufn/pkg/key"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/ethereum/go-ethereum/common"
)

var getClient = evm.GetClient

// connect dials the network rpc and warns if it serves another chain than
// the preset one
func connect(ctx context.Context, network models.Network, signers *key.Set) (*evm.Client, error) {
	client, err := getClient(ctx, network.RPCURL, signers)
	if err != nil {
		return nil, err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}
	if chainID.Uint64() != network.ChainID {
		ux.Logger.YellowToUser(
			"Warning: %s reports chain id %d, %s is expected to be %d",
			network.RPCURL,
			chainID.Uint64(),
			network.Name,
			network.ChainID,
		)
	}
	return client, nil
}

func deployerConfig(network models.Network) deployer.Config {
	return deployer.Config{
		ContractName:   app.Conf.GetConfigStringValue(constants.ConfigContractKey),
		SmokeMethod:    app.Conf.GetConfigStringValue(constants.ConfigSmokeMethodKey),
		Network:        network,
		ConfirmTimeout: app.Conf.GetConfigDurationValue(constants.ConfigTimeoutKey),
		StrictVerify:   app.Conf.GetConfigBoolValue(constants.ConfigStrictVerifyKey),
	}
}

// reportFailure prints the failure line and marks the error as reported,
// so the process exits 1 without printing it twice
func reportFailure(err error) error {
	ux.Logger.RedXToUser("Deployment failed: %s", err)
	return cobrautils.ReportedError{Err: err}
}

// recordedDeployer reports the deployer stored in a deployment record when
// no signer is configured
type recordedDeployer struct {
	deployer.Chain
	address common.Address
}

func (r recordedDeployer) Signers(context.Context) ([]common.Address, error) {
	return []common.Address{r.address}, nil
}

// canPrompt is true when a user can answer prompts on the terminal
func canPrompt() bool {
	return app.Prompt != nil && ux.Logger.Interactive
}

// pickingStore asks which artifact to use when a bare contract name
// matches several sources
type pickingStore struct {
	*artifacts.Store
}

func (s pickingStore) Load(name string) (*artifacts.Blueprint, error) {
	bp, err := s.Store.Load(name)
	var ambiguous *artifacts.AmbiguousError
	if !errors.As(err, &ambiguous) || !canPrompt() {
		return bp, err
	}
	choice, promptErr := app.Prompt.CaptureList("Which contract do you want to deploy?", ambiguous.Qualified)
	if promptErr != nil {
		return nil, promptErr
	}
	return s.Store.Load(choice)
}
