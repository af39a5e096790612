// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"time"

	"github.com/urban-foraging/ufn/pkg/models"
)

// Record converts a finished run into its persisted form
func (r *Result) Record(now time.Time) *models.Deployment {
	d := &models.Deployment{
		Contract:     r.ContractName,
		Network:      r.Network.Key,
		NetworkName:  r.Network.Name,
		ChainID:      r.Network.ChainID,
		Address:      r.Address.Hex(),
		TxHash:       r.TxHash.Hex(),
		BlockNumber:  r.BlockNumber,
		GasUsed:      r.GasUsed,
		Deployer:     r.Deployer.Hex(),
		CodeVerified: r.CodeVerified,
		SmokeMethod:  r.SmokeMethod,
		SmokeValue:   r.SmokeValue,
		Timestamp:    now.UTC(),
	}
	if r.SmokeErr != nil {
		d.SmokeError = r.SmokeErr.Error()
	}
	return d
}

// Merge refreshes the verification fields of a stored record with the
// outcome of a later verify run
func (r *Result) Merge(d *models.Deployment, now time.Time) {
	d.CodeVerified = r.CodeVerified
	d.Deployer = r.Deployer.Hex()
	d.SmokeValue = r.SmokeValue
	d.SmokeError = ""
	if r.SmokeErr != nil {
		d.SmokeError = r.SmokeErr.Error()
	}
	d.Timestamp = now.UTC()
}
