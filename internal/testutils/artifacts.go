// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteHardhatArtifact lays out [contractName] the way `hardhat compile` does,
// under <artifactsDir>/contracts/<contractName>.sol/
func WriteHardhatArtifact(fs afero.Fs, artifactsDir, contractName, abiJSON, initCode string) error {
	sourceName := filepath.ToSlash(filepath.Join("contracts", contractName+".sol"))
	artifact := map[string]interface{}{
		"_format":                "hh-sol-artifact-1",
		"contractName":           contractName,
		"sourceName":             sourceName,
		"abi":                    json.RawMessage(abiJSON),
		"bytecode":               "0x" + initCode,
		"deployedBytecode":       "0x",
		"linkReferences":         map[string]interface{}{},
		"deployedLinkReferences": map[string]interface{}{},
	}
	return writeJSON(fs, filepath.Join(artifactsDir, sourceName, contractName+".json"), artifact)
}

// WriteFoundryArtifact lays out [contractName] the way `forge build` does,
// under <outDir>/<contractName>.sol/
func WriteFoundryArtifact(fs afero.Fs, outDir, contractName, abiJSON, initCode string) error {
	artifact := map[string]interface{}{
		"abi": json.RawMessage(abiJSON),
		"bytecode": map[string]interface{}{
			"object":         "0x" + initCode,
			"linkReferences": map[string]interface{}{},
		},
		"deployedBytecode": map[string]interface{}{
			"object": "0x",
		},
		"metadata": map[string]interface{}{
			"settings": map[string]interface{}{
				"compilationTarget": map[string]string{
					"src/" + contractName + ".sol": contractName,
				},
			},
		},
	}
	return writeJSON(fs, filepath.Join(outDir, contractName+".sol", contractName+".json"), artifact)
}

func writeJSON(fs afero.Fs, path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path, b, 0o644)
}
