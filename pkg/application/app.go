// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/urban-foraging/ufn/pkg/config"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/prompts"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type UFN struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	Fs      afero.Fs
}

func New() *UFN {
	return &UFN{}
}

func (app *UFN) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Fs = fs
}

func (app *UFN) GetBaseDir() string {
	return app.baseDir
}

func (app *UFN) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *UFN) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *UFN) GetDeploymentsDir() string {
	return filepath.Join(app.baseDir, constants.DeploymentsDir)
}

func (app *UFN) GetNetworkDeploymentsDir(network string) string {
	return filepath.Join(app.GetDeploymentsDir(), network)
}

func (app *UFN) GetDeploymentRecordPath(network, contractName string) string {
	return filepath.Join(app.GetNetworkDeploymentsDir(network), contractName+constants.RecordExtension)
}
