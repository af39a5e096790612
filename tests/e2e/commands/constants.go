// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	CLIBinary      = "./bin/ufn"
	ContractCmd    = "contract"
	DeploymentsCmd = "deployments"
	KeyCmd         = "key"
	NetworkCmd     = "network"
	ConfigCmd      = "config"

	// rpc of the chain deployed to, a hardhat node by default
	RPCURLEnvVar     = "UFN_E2E_RPC_URL"
	PrivateKeyEnvVar = "UFN_E2E_PRIVATE_KEY"

	DefaultRPCURL = "http://127.0.0.1:8545"
	// first hardhat node account
	DefaultPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)
