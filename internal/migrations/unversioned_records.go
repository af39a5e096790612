// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package migrations

import (
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/models"
)

// Records without a version were written before the network name and chain
// id were stored in them. Both are filled in from the network preset.
func migrateUnversionedRecords(app *application.UFN, runner *migrationRunner) error {
	records, err := app.GetDeploymentRecords("")
	if err != nil {
		return err
	}
	for i := range records {
		record := &records[i]
		if record.Version != "" {
			continue
		}
		network, err := models.NetworkFromKey(record.Network)
		if err != nil {
			// unknown networks are kept untouched
			continue
		}
		runner.printMigrationMessage()
		if record.NetworkName == "" {
			record.NetworkName = network.Name
		}
		if record.ChainID == 0 {
			record.ChainID = network.ChainID
		}
		if err := app.WriteDeploymentRecord(record); err != nil {
			return err
		}
	}
	return nil
}
