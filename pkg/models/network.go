// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"
	"sort"

	"github.com/urban-foraging/ufn/pkg/constants"
)

type Network struct {
	Key     string
	Name    string
	ChainID uint64
	RPCURL  string
	// RPCURLEnv is the hardhat .env variable holding a project specific rpc url
	RPCURLEnv string
}

var (
	CoreTestnet = Network{
		Key:     constants.CoreTestnetKey,
		Name:    constants.CoreTestnetName,
		ChainID: constants.CoreTestnetChainID,
		RPCURL:  constants.CoreTestnetRPCURL,

		RPCURLEnv: constants.CoreTestnetRPCURLEnv,
	}
	CoreMainnet = Network{
		Key:     constants.CoreMainnetKey,
		Name:    constants.CoreMainnetName,
		ChainID: constants.CoreMainnetChainID,
		RPCURL:  constants.CoreMainnetRPCURL,

		RPCURLEnv: constants.CoreMainnetRPCURLEnv,
	}
	Localhost = Network{
		Key:     constants.LocalhostKey,
		Name:    constants.LocalhostName,
		ChainID: constants.LocalhostChainID,
		RPCURL:  constants.LocalhostRPCURL,
	}
)

var networks = map[string]Network{
	CoreTestnet.Key: CoreTestnet,
	CoreMainnet.Key: CoreMainnet,
	Localhost.Key:   Localhost,
}

func (n Network) String() string {
	return n.Name
}

// IsMainnet reports whether deploys on [n] spend real funds
func (n Network) IsMainnet() bool {
	return n.Key == constants.CoreMainnetKey
}

// WithRPCURL returns a copy of [n] pointing at [url], if not empty
func (n Network) WithRPCURL(url string) Network {
	if url != "" {
		n.RPCURL = url
	}
	return n
}

func NetworkFromKey(key string) (Network, error) {
	n, ok := networks[key]
	if !ok {
		return Network{}, fmt.Errorf("%w: %q (known: %v)", constants.ErrUnknownNetwork, key, NetworkKeys())
	}
	return n, nil
}

func NetworkKeys() []string {
	keys := make([]string, 0, len(networks))
	for k := range networks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AllNetworks returns the presets sorted by key
func AllNetworks() []Network {
	keys := NetworkKeys()
	all := make([]Network, 0, len(keys))
	for _, k := range keys {
		all = append(all, networks[k])
	}
	return all
}
