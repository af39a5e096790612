// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "time"

// Deployment is the persisted outcome of a contract deploy
type Deployment struct {
	Contract     string    `json:"contract" yaml:"contract"`
	Network      string    `json:"network" yaml:"network"`
	NetworkName  string    `json:"networkName" yaml:"networkName"`
	ChainID      uint64    `json:"chainId" yaml:"chainId"`
	Address      string    `json:"address" yaml:"address"`
	TxHash       string    `json:"txHash" yaml:"txHash"`
	BlockNumber  uint64    `json:"blockNumber" yaml:"blockNumber"`
	GasUsed      uint64    `json:"gasUsed" yaml:"gasUsed"`
	Deployer     string    `json:"deployer" yaml:"deployer"`
	CodeVerified bool      `json:"codeVerified" yaml:"codeVerified"`
	SmokeMethod  string    `json:"smokeMethod,omitempty" yaml:"smokeMethod,omitempty"`
	SmokeValue   string    `json:"smokeValue,omitempty" yaml:"smokeValue,omitempty"`
	SmokeError   string    `json:"smokeError,omitempty" yaml:"smokeError,omitempty"`
	Timestamp    time.Time `json:"timestamp" yaml:"timestamp"`
	Version      string    `json:"version" yaml:"version"`
}
