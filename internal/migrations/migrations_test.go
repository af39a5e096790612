// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package migrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	out := &bytes.Buffer{}
	prev := ux.Logger
	ux.Logger = ux.New(zap.NewNop(), out)
	t.Cleanup(func() { ux.Logger = prev })
	return out
}

func TestRunMigrations(t *testing.T) {
	assert := assert.New(t)
	app := application.NewTestApp(t)

	type migTest struct {
		migs           map[int]migrationFunc
		name           string
		shouldErr      bool
		expectedOutput string
	}

	expectedIfRan := runMessage + "\n" + endMessage + "\n"
	expectedIfFailed := runMessage + "\n" + failedEndMessage + "\n"

	tests := []migTest{
		{
			name:           "no migrations",
			shouldErr:      false,
			migs:           map[int]migrationFunc{},
			expectedOutput: "",
		},
		{
			name:      "migration fail",
			shouldErr: true,
			migs: map[int]migrationFunc{
				0: func(*application.UFN, *migrationRunner) error {
					return errors.New("bogus fail")
				},
			},
			expectedOutput: "",
		},
		{
			name:      "1 mig, apply",
			shouldErr: false,
			migs: map[int]migrationFunc{
				0: func(_ *application.UFN, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
			},
			expectedOutput: expectedIfRan,
		},
		{
			name:      "2 mig, apply both",
			shouldErr: false,
			migs: map[int]migrationFunc{
				0: func(_ *application.UFN, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
				1: func(_ *application.UFN, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
			},
			expectedOutput: expectedIfRan,
		},
		{
			name:      "2 mig, second fails",
			shouldErr: true,
			migs: map[int]migrationFunc{
				0: func(_ *application.UFN, r *migrationRunner) error {
					r.printMigrationMessage()
					return nil
				},
				1: func(*application.UFN, *migrationRunner) error {
					return errors.New("bogus fail")
				},
			},
			expectedOutput: expectedIfFailed,
		},
	}

	for _, tt := range tests {
		out := setOutput(t)
		m := &migrationRunner{
			showMsg:    true,
			migrations: tt.migs,
		}
		err := m.run(app)
		if tt.shouldErr {
			assert.Error(err, tt.name)
		} else {
			assert.NoError(err, tt.name)
		}
		assert.Equal(tt.expectedOutput, out.String(), tt.name)
	}
}

func TestMigrateUnversionedRecords(t *testing.T) {
	require := require.New(t)
	out := setOutput(t)
	app := application.NewTestApp(t)

	legacy := models.Deployment{
		Contract: constants.DefaultContractName,
		Network:  constants.CoreTestnetKey,
		Address:  "0x5FbDB2315678afecb367f032d93F642f64180aa3",
	}
	b, err := json.Marshal(legacy)
	require.NoError(err)
	require.NoError(app.Fs.MkdirAll(app.GetNetworkDeploymentsDir(legacy.Network), constants.DefaultPerms755))
	require.NoError(afero.WriteFile(app.Fs, app.GetDeploymentRecordPath(legacy.Network, legacy.Contract), b, constants.WriteReadReadPerms))

	require.NoError(RunMigrations(app))
	require.Equal(runMessage+"\n"+endMessage+"\n", out.String())

	migrated, err := app.LoadDeploymentRecord(legacy.Network, legacy.Contract)
	require.NoError(err)
	require.Equal(constants.CoreTestnetName, migrated.NetworkName)
	require.Equal(uint64(constants.CoreTestnetChainID), migrated.ChainID)
	require.Equal(constants.RecordVersion, migrated.Version)
	require.Equal(legacy.Address, migrated.Address)

	// nothing left to migrate
	out.Reset()
	require.NoError(RunMigrations(app))
	require.Empty(out.String())
}
