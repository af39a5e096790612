// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	WriteReadUserOnlyPerms = 0o600

	BaseDirName     = ".ufn"
	LogDir          = "logs"
	LogFileName     = "ufn.log"
	DeploymentsDir  = "deployments"
	ConfigFileName  = "config.json"
	DotEnvFileName  = ".env"
	EnvPrefix       = "UFN"
	RecordExtension = ".json"
	RecordVersion   = "1.0.0"

	// log rotation
	DefaultLogLevel  = "info"
	MaxLogFileSize   = 4 // megabytes
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	DefaultContractName  = "UrbanForagingNetwork"
	DefaultSmokeMethod   = "nextLocationId()->(uint256)"
	DefaultArtifactsDir  = "artifacts"
	DefaultConfirmations = 1
	DefaultTimeout       = 10 * time.Minute
	ConfirmationPoll     = 2 * time.Second

	CoreTestnetKey     = "core_testnet"
	CoreTestnetName    = "Core Testnet"
	CoreTestnetChainID = 1114
	CoreTestnetRPCURL  = "https://rpc.test2.btcs.network"

	CoreMainnetKey     = "core_mainnet"
	CoreMainnetName    = "Core Mainnet"
	CoreMainnetChainID = 1116
	CoreMainnetRPCURL  = "https://rpc.coredao.org"

	LocalhostKey     = "localhost"
	LocalhostName    = "Localhost"
	LocalhostChainID = 31337
	LocalhostRPCURL  = "http://127.0.0.1:8545"

	DefaultNetworkKey = CoreTestnetKey

	// config keys
	ConfigMetricsEnabledKey = "metrics-enabled"
	ConfigNetworkKey        = "network"
	ConfigRPCURLKey         = "rpc-url"
	ConfigPrivateKeysKey    = "private-keys"
	ConfigKeystoreKey       = "keystore"
	ConfigKeystorePassKey   = "keystore-password"
	ConfigArtifactsKey      = "artifacts"
	ConfigContractKey       = "contract"
	ConfigConfirmationsKey  = "confirmations"
	ConfigTimeoutKey        = "timeout"
	ConfigSmokeMethodKey    = "smoke-method"
	ConfigStrictVerifyKey   = "strict-verify"
	ConfigLogLevelKey       = "log-level"

	// hardhat project conventions read from the environment / .env
	HardhatPrivateKeyEnv = "PRIVATE_KEY"
	CoreTestnetRPCURLEnv = "CORE_TESTNET_RPC_URL"
	CoreMainnetRPCURLEnv = "CORE_MAINNET_RPC_URL"

	E2EEnvVar = "RUN_UFN_E2E"
)
