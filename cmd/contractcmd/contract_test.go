// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urban-foraging/ufn/cmd/flags"
	"github.com/urban-foraging/ufn/internal/mocks"
	"github.com/urban-foraging/ufn/internal/testutils"
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/artifacts"
	"github.com/urban-foraging/ufn/pkg/clierrors"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/evm"
	"github.com/urban-foraging/ufn/pkg/key"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type harness struct {
	app   *application.UFN
	chain *testutils.SimulatedChain
	out   *bytes.Buffer
}

func newHarness(t *testing.T, initCode string) *harness {
	t.Helper()
	t.Setenv(constants.HardhatPrivateKeyEnv, "")
	t.Setenv("UFN_PRIVATE_KEYS", "")
	t.Setenv("UFN_KEYSTORE", "")
	color.NoColor = true

	h := &harness{
		app:   application.NewTestApp(t),
		chain: testutils.NewSimulatedChain(t, 2),
		out:   &bytes.Buffer{},
	}
	require.NoError(t, testutils.WriteHardhatArtifact(
		h.app.Fs,
		constants.DefaultArtifactsDir,
		constants.DefaultContractName,
		testutils.NextLocationIDABI,
		initCode,
	))

	prevLogger, prevGetClient := ux.Logger, getClient
	ux.Logger = ux.New(zap.NewNop(), h.out)
	getClient = func(_ context.Context, rpcURL string, signers *key.Set) (*evm.Client, error) {
		return evm.NewClient(h.chain, rpcURL, signers), nil
	}
	t.Cleanup(func() {
		ux.Logger = prevLogger
		getClient = prevGetClient
	})
	return h
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	root := &cobra.Command{Use: "ufn", SilenceErrors: true, SilenceUsage: true}
	require.NoError(t, flags.AddNetworkFlags(h.app, root))
	root.AddCommand(NewCmd(h.app))
	root.SetArgs(append([]string{"--network", constants.LocalhostKey}, args...))
	return root.ExecuteContext(context.Background())
}

func TestDeployAndVerify(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)

	require.NoError(h.run(t, "contract", "deploy", "--private-key", strings.Join(h.chain.HexKeys(), ",")))
	out := h.out.String()
	require.Contains(out, "Deploying UrbanForagingNetwork contract to Localhost...")
	require.Contains(out, "✓ Contract successfully deployed and verified")
	require.Contains(out, "Deployer Address: "+h.chain.Address(0).Hex())
	require.Contains(out, "Initial nextLocationId: 1")
	// the simulated chain id differs from the localhost preset
	require.Contains(out, "reports chain id 1337")

	record, err := h.app.LoadDeploymentRecord(constants.LocalhostKey, constants.DefaultContractName)
	require.NoError(err)
	require.True(record.CodeVerified)
	require.Equal("1", record.SmokeValue)
	require.Equal(h.chain.Address(0).Hex(), record.Deployer)

	// no signer configured, the recorded deployer is reported
	h.out.Reset()
	require.NoError(h.run(t, "contract", "verify"))
	require.Contains(h.out.String(), "Contract Address: "+record.Address)
	require.Contains(h.out.String(), "Deployer Address: "+record.Deployer)
	require.Contains(h.out.String(), "Initial nextLocationId: 1")
}

func TestDeployNoRecord(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)

	require.NoError(h.run(t, "contract", "deploy", "--no-record", "--private-key", h.chain.HexKeys()[0]))
	require.False(h.app.DeploymentRecordExists(constants.LocalhostKey, constants.DefaultContractName))
}

func TestDeployMissingArtifact(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)

	err := h.run(t, "contract", "deploy", "--contract", "Missing", "--private-key", h.chain.HexKeys()[0])
	require.Error(err)
	var reported cobrautils.ReportedError
	require.True(errors.As(err, &reported))
	require.Contains(h.out.String(), "✗ Deployment failed:")
	require.NotContains(h.out.String(), "Transaction hash:")
}

func TestDeployWithoutSigners(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)

	err := h.run(t, "contract", "deploy")
	require.ErrorIs(err, constants.ErrNoSigners)
	var reported cobrautils.ReportedError
	require.ErrorAs(err, &reported)
	require.Contains(h.out.String(), "✗ Deployment failed: "+constants.ErrNoSigners.Error())
}

func TestDeployQualifiedNameOnDisk(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)
	h.app.Fs = afero.NewOsFs()
	artifactsDir := filepath.Join(t.TempDir(), constants.DefaultArtifactsDir)
	require.NoError(testutils.WriteHardhatArtifact(h.app.Fs, artifactsDir, constants.DefaultContractName, testutils.NextLocationIDABI, testutils.CounterInitCode))
	qualified := "contracts/" + constants.DefaultContractName + ".sol:" + constants.DefaultContractName

	require.NoError(h.run(t, "contract", "deploy", "--contract", qualified, "--artifacts", artifactsDir, "--private-key", h.chain.HexKeys()[0]))
	require.Contains(h.out.String(), "Deploying UrbanForagingNetwork contract to Localhost...")
	record, err := h.app.LoadDeploymentRecord(constants.LocalhostKey, constants.DefaultContractName)
	require.NoError(err)
	require.Equal(constants.DefaultContractName, record.Contract)

	// the qualified name finds the record saved under the bare one
	h.out.Reset()
	require.NoError(h.run(t, "contract", "verify", "--contract", qualified))
	require.Contains(h.out.String(), "Contract Address: "+record.Address)
}

func TestDeployPicksBetweenSameNameArtifacts(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)
	require.NoError(testutils.WriteFoundryArtifact(h.app.Fs, filepath.Join(constants.DefaultArtifactsDir, "legacy"), constants.DefaultContractName, testutils.NextLocationIDABI, testutils.EmptyInitCode))
	app = h.app
	store := pickingStore{Store: artifacts.NewStore(h.app.Fs, constants.DefaultArtifactsDir)}

	// no terminal, the ambiguity is reported
	_, err := store.Load(constants.DefaultContractName)
	require.ErrorIs(err, artifacts.ErrAmbiguous)

	prompter := mocks.NewMockPrompter(gomock.NewController(t))
	h.app.Prompt = prompter
	ux.Logger.Interactive = true
	foundryName := "src/" + constants.DefaultContractName + ".sol:" + constants.DefaultContractName
	prompter.EXPECT().CaptureList("Which contract do you want to deploy?", []string{
		"contracts/" + constants.DefaultContractName + ".sol:" + constants.DefaultContractName,
		foundryName,
	}).Return(foundryName, nil)

	bp, err := store.Load(constants.DefaultContractName)
	require.NoError(err)
	require.Equal("src/"+constants.DefaultContractName+".sol", bp.SourceName)
	require.Equal(testutils.MustDecodeHex(t, testutils.EmptyInitCode), bp.Bytecode)
}

func TestDeployStrictVerifyKeepsRecord(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.EmptyInitCode)

	err := h.run(t, "contract", "deploy", "--strict-verify", "--private-key", h.chain.HexKeys()[0])
	require.Error(err)
	require.Contains(h.out.String(), "✗ Contract deployment failed - no code at address")

	record, err := h.app.LoadDeploymentRecord(constants.LocalhostKey, constants.DefaultContractName)
	require.NoError(err)
	require.False(record.CodeVerified)
}

func TestVerifyAddressArgument(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)

	err := h.run(t, "contract", "verify", "not-an-address")
	require.ErrorIs(err, clierrors.ErrInvalidAddress)

	err = h.run(t, "contract", "verify")
	require.ErrorIs(err, clierrors.ErrNoRecord)

	// an address without code still reports, with the failure diagnostic
	addr := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	require.NoError(h.run(t, "contract", "verify", addr.Hex(), "--private-key", h.chain.HexKeys()[1]))
	require.Contains(h.out.String(), "✗ Contract deployment failed - no code at address")
	require.Contains(h.out.String(), "Deployer Address: "+h.chain.Address(1).Hex())
	require.Contains(h.out.String(), "✗ Error testing contract functionality:")
}

func TestVerifyPromptsForAddress(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)
	prompter := mocks.NewMockPrompter(gomock.NewController(t))
	h.app.Prompt = prompter
	ux.Logger.Interactive = true
	addr := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	prompter.EXPECT().CaptureAddress("Contract address").Return(addr, nil)

	require.NoError(h.run(t, "contract", "verify", "--private-key", h.chain.HexKeys()[0]))
	require.Contains(h.out.String(), "No deployment record of UrbanForagingNetwork found for Localhost")
	require.Contains(h.out.String(), "Contract Address: "+addr.Hex())
	require.False(h.app.DeploymentRecordExists(constants.LocalhostKey, constants.DefaultContractName))
}

func TestVerifyRecordWithoutDeployer(t *testing.T) {
	require := require.New(t)
	h := newHarness(t, testutils.CounterInitCode)
	require.NoError(h.run(t, "contract", "deploy", "--private-key", h.chain.HexKeys()[0]))
	record, err := h.app.LoadDeploymentRecord(constants.LocalhostKey, constants.DefaultContractName)
	require.NoError(err)
	record.Deployer = ""
	require.NoError(h.app.WriteDeploymentRecord(&record))

	h.out.Reset()
	err = h.run(t, "contract", "verify")
	require.ErrorIs(err, clierrors.ErrNoRecordedDeployer)
	require.NotContains(h.out.String(), "Deployer Address: 0x0000000000000000000000000000000000000000")
}
