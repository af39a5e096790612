// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package artifacts

import (
	"path/filepath"
	"testing"

	"github.com/urban-foraging/ufn/internal/testutils"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const contractName = "UrbanForagingNetwork"

func TestLoadHardhatArtifact(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, testutils.CounterInitCode))
	// hardhat also writes debug files and build info next to artifacts
	require.NoError(afero.WriteFile(fs, filepath.Join("artifacts", "contracts", contractName+".sol", contractName+".dbg.json"), []byte(`{"_format":"hh-sol-dbg-1"}`), 0o644))
	require.NoError(afero.WriteFile(fs, filepath.Join("artifacts", "build-info", contractName+".json"), []byte(`{}`), 0o644))

	bp, err := NewStore(fs, "artifacts").Load(contractName)
	require.NoError(err)
	require.Equal(contractName, bp.Name)
	require.Equal("contracts/"+contractName+".sol", bp.SourceName)
	require.Equal(testutils.MustDecodeHex(t, testutils.CounterInitCode), bp.Bytecode)
	require.Empty(bp.DeployedBytecode)
	_, ok := bp.ABI.Methods["nextLocationId"]
	require.True(ok)
}

func TestLoadFoundryArtifact(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteFoundryArtifact(fs, "out", contractName, testutils.NextLocationIDABI, testutils.CounterInitCode))

	bp, err := NewStore(fs, "out").Load(contractName)
	require.NoError(err)
	require.Equal(contractName, bp.Name)
	require.Equal("src/"+contractName+".sol", bp.SourceName)
	require.Equal(testutils.MustDecodeHex(t, testutils.CounterInitCode), bp.Bytecode)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(fs afero.Fs) error
		load   string
		expErr error
	}{
		{
			name:   "missing dir",
			setup:  func(afero.Fs) error { return nil },
			load:   contractName,
			expErr: ErrNotFound,
		},
		{
			name: "missing contract",
			setup: func(fs afero.Fs) error {
				return testutils.WriteHardhatArtifact(fs, "artifacts", "Other", testutils.NextLocationIDABI, testutils.CounterInitCode)
			},
			load:   contractName,
			expErr: ErrNotFound,
		},
		{
			name: "unlinked library",
			setup: func(fs afero.Fs) error {
				return testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, "6080__$1234567890abcdef1234567890abcdef12$__")
			},
			load:   contractName,
			expErr: ErrUnlinked,
		},
		{
			name: "interface",
			setup: func(fs afero.Fs) error {
				return testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, "")
			},
			load:   contractName,
			expErr: ErrNoBytecode,
		},
		{
			name: "same name in two sources",
			setup: func(fs afero.Fs) error {
				if err := testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, testutils.CounterInitCode); err != nil {
					return err
				}
				return testutils.WriteFoundryArtifact(fs, filepath.Join("artifacts", "legacy"), contractName, testutils.NextLocationIDABI, testutils.CounterInitCode)
			},
			load:   contractName,
			expErr: ErrAmbiguous,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, tt.setup(fs))
			_, err := NewStore(fs, "artifacts").Load(tt.load)
			require.ErrorIs(t, err, tt.expErr)
		})
	}
}

func TestLoadQualifiedName(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, testutils.CounterInitCode))
	require.NoError(testutils.WriteFoundryArtifact(fs, filepath.Join("artifacts", "legacy"), contractName, testutils.NextLocationIDABI, testutils.EmptyInitCode))
	store := NewStore(fs, "artifacts")

	bp, err := store.Load("contracts/" + contractName + ".sol:" + contractName)
	require.NoError(err)
	require.Equal(testutils.MustDecodeHex(t, testutils.CounterInitCode), bp.Bytecode)

	bp, err = store.Load("src/" + contractName + ".sol:" + contractName)
	require.NoError(err)
	require.Equal(testutils.MustDecodeHex(t, testutils.EmptyInitCode), bp.Bytecode)

	_, err = store.Load(contractName + ".sol:" + contractName)
	require.ErrorIs(err, ErrAmbiguous)

	_, err = store.Load("contracts/Missing.sol:" + contractName)
	require.ErrorIs(err, ErrNotFound)
}

func TestLoadQualifiedNameSkipsOtherSources(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, testutils.CounterInitCode))
	// an interface of the same name compiled from another source has no bytecode
	require.NoError(testutils.WriteFoundryArtifact(fs, filepath.Join("artifacts", "legacy"), contractName, testutils.NextLocationIDABI, ""))
	store := NewStore(fs, "artifacts")

	bp, err := store.Load("contracts/" + contractName + ".sol:" + contractName)
	require.NoError(err)
	require.Equal(contractName, bp.Name)
	require.Equal(testutils.MustDecodeHex(t, testutils.CounterInitCode), bp.Bytecode)

	_, err = store.Load("src/" + contractName + ".sol:" + contractName)
	require.ErrorIs(err, ErrNoBytecode)
}

func TestLoadAmbiguousListsQualifiedNames(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteHardhatArtifact(fs, "artifacts", contractName, testutils.NextLocationIDABI, testutils.CounterInitCode))
	require.NoError(testutils.WriteFoundryArtifact(fs, filepath.Join("artifacts", "legacy"), contractName, testutils.NextLocationIDABI, testutils.CounterInitCode))

	_, err := NewStore(fs, "artifacts").Load(contractName)
	var ambiguous *AmbiguousError
	require.ErrorAs(err, &ambiguous)
	require.ErrorIs(err, ErrAmbiguous)
	require.ElementsMatch([]string{
		"contracts/" + contractName + ".sol:" + contractName,
		"src/" + contractName + ".sol:" + contractName,
	}, ambiguous.Qualified)
	require.Len(ambiguous.Paths, 2)
}

func TestContractName(t *testing.T) {
	require.Equal(t, contractName, ContractName(contractName))
	require.Equal(t, contractName, ContractName("contracts/"+contractName+".sol:"+contractName))
}
