// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/clierrors"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/key"
	"github.com/urban-foraging/ufn/pkg/utils"

	"github.com/spf13/cobra"
)

type SignerFlags struct {
	privateKeyFlagName string
	keystoreFlagName   string
	PrivateKeys        []string
	Keystore           string
}

const (
	defaultPrivateKeyFlagName = "private-key"
	defaultKeystoreFlagName   = "keystore"
)

func (sf *SignerFlags) fillDefaultFlagNames() {
	if sf.privateKeyFlagName == "" {
		sf.privateKeyFlagName = defaultPrivateKeyFlagName
	}
	if sf.keystoreFlagName == "" {
		sf.keystoreFlagName = defaultKeystoreFlagName
	}
}

func (sf *SignerFlags) AddToCmd(
	cmd *cobra.Command,
	goal string,
) {
	sf.fillDefaultFlagNames()
	cmd.Flags().StringSliceVar(
		&sf.PrivateKeys,
		sf.privateKeyFlagName,
		nil,
		fmt.Sprintf("hex private key to use %s (repeatable, first one is the primary signer)", goal),
	)
	cmd.Flags().StringVar(
		&sf.Keystore,
		sf.keystoreFlagName,
		"",
		fmt.Sprintf("web3 keystore dir with the accounts to use %s", goal),
	)
}

// Bind makes the flags override the config file and env values. Must be
// called once the command to execute is known, eg from PreRunE.
func (sf *SignerFlags) Bind(app *application.UFN, cmd *cobra.Command) error {
	sf.fillDefaultFlagNames()
	if !EnsureMutuallyExclusive([]bool{
		cmd.Flags().Changed(sf.privateKeyFlagName),
		cmd.Flags().Changed(sf.keystoreFlagName),
	}) {
		return clierrors.ErrMutuallyExclusive
	}
	if err := app.Conf.BindFlag(constants.ConfigPrivateKeysKey, cmd.Flags().Lookup(sf.privateKeyFlagName)); err != nil {
		return err
	}
	return app.Conf.BindFlag(constants.ConfigKeystoreKey, cmd.Flags().Lookup(sf.keystoreFlagName))
}

// GetSigners loads the configured private keys followed by the keystore
// accounts. The keystore passphrase is prompted for if not configured.
func (*SignerFlags) GetSigners(app *application.UFN) (*key.Set, error) {
	signers, err := key.FromPrivateKeys(app.Conf.GetPrivateKeys())
	if err != nil {
		return nil, err
	}
	keystoreDir := utils.GetRealFilePath(app.Conf.GetConfigStringValue(constants.ConfigKeystoreKey))
	if keystoreDir != "" {
		passphrase := app.Conf.GetConfigStringValue(constants.ConfigKeystorePassKey)
		if passphrase == "" {
			if app.Prompt == nil {
				return nil, fmt.Errorf("keystore passphrase not configured, set %s_KEYSTORE_PASSWORD", constants.EnvPrefix)
			}
			passphrase, err = app.Prompt.CapturePassword("Keystore passphrase")
			if err != nil {
				return nil, err
			}
		}
		keystoreSigners, err := key.FromKeystore(app.Fs, app.Log, keystoreDir, passphrase)
		if err != nil {
			return nil, err
		}
		signers = signers.Merge(keystoreSigners)
	}
	if signers.Len() == 0 {
		return nil, constants.ErrNoSigners
	}
	return signers, nil
}
