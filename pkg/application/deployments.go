// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/utils"

	"github.com/spf13/afero"
)

func (app *UFN) DeploymentRecordExists(network, contractName string) bool {
	return utils.FileExists(app.Fs, app.GetDeploymentRecordPath(network, contractName))
}

func (app *UFN) WriteDeploymentRecord(d *models.Deployment) error {
	d.Version = constants.RecordVersion
	recordBytes, err := json.MarshalIndent(d, "", "    ")
	if err != nil {
		return err
	}
	if err := app.Fs.MkdirAll(app.GetNetworkDeploymentsDir(d.Network), constants.DefaultPerms755); err != nil {
		return err
	}
	recordPath := app.GetDeploymentRecordPath(d.Network, d.Contract)
	return afero.WriteFile(app.Fs, recordPath, recordBytes, constants.WriteReadReadPerms)
}

func (app *UFN) LoadDeploymentRecord(network, contractName string) (models.Deployment, error) {
	recordPath := app.GetDeploymentRecordPath(network, contractName)
	jsonBytes, err := afero.ReadFile(app.Fs, recordPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Deployment{}, fmt.Errorf("%w for %s on %s", constants.ErrNoDeploymentData, contractName, network)
		}
		return models.Deployment{}, err
	}
	var d models.Deployment
	if err := json.Unmarshal(jsonBytes, &d); err != nil {
		return models.Deployment{}, fmt.Errorf("invalid deployment record %s: %w", recordPath, err)
	}
	return d, nil
}

// GetDeploymentRecords loads every record, optionally filtered by [network],
// sorted by network then contract
func (app *UFN) GetDeploymentRecords(network string) ([]models.Deployment, error) {
	dir := app.GetDeploymentsDir()
	if !utils.DirectoryExists(app.Fs, dir) {
		return nil, nil
	}
	records := []models.Deployment{}
	err := afero.Walk(app.Fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, constants.RecordExtension) {
			return nil
		}
		recordNetwork := filepath.Base(filepath.Dir(path))
		if network != "" && recordNetwork != network {
			return nil
		}
		d, err := app.LoadDeploymentRecord(recordNetwork, strings.TrimSuffix(info.Name(), constants.RecordExtension))
		if err != nil {
			return err
		}
		records = append(records, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Network != records[j].Network {
			return records[i].Network < records[j].Network
		}
		return records[i].Contract < records[j].Contract
	})
	return records, nil
}
