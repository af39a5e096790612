// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/urban-foraging/ufn/internal/testutils"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/models"
	"github.com/urban-foraging/ufn/tests/e2e/commands"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/spf13/afero"
)

var addressRegex = regexp.MustCompile(`UrbanForagingNetwork contract deployed to: (0x[0-9a-fA-F]{40})`)

func writeProject(initCode string) string {
	dir, err := os.MkdirTemp("", "ufn-e2e-project")
	gomega.Expect(err).Should(gomega.BeNil())
	err = testutils.WriteHardhatArtifact(
		afero.NewOsFs(),
		filepath.Join(dir, constants.DefaultArtifactsDir),
		constants.DefaultContractName,
		testutils.NextLocationIDABI,
		initCode,
	)
	gomega.Expect(err).Should(gomega.BeNil())
	// hardhat projects keep the deployer key in .env
	err = os.WriteFile(filepath.Join(dir, constants.DotEnvFileName), []byte(constants.HardhatPrivateKeyEnv+"="+commands.PrivateKey()+"\n"), constants.WriteReadUserOnlyPerms)
	gomega.Expect(err).Should(gomega.BeNil())
	return dir
}

func deployedAddress(out string) string {
	matches := addressRegex.FindStringSubmatch(out)
	gomega.Expect(matches).Should(gomega.HaveLen(2))
	return matches[1]
}

var _ = ginkgo.Describe("[Contract]", ginkgo.Ordered, func() {
	var projectDir string

	ginkgo.BeforeAll(func() {
		projectDir = writeProject(testutils.CounterInitCode)
	})

	ginkgo.AfterAll(func() {
		_ = os.RemoveAll(projectDir)
		_ = os.RemoveAll(commands.Home)
	})

	ginkgo.It("deploys and verifies the contract", func() {
		out, err := commands.DeployContract(projectDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Transaction hash: 0x"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Contract successfully deployed and verified"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Initial nextLocationId: 1"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Contract is functional and ready to use"))
	})

	ginkgo.It("yields a new address on every deploy", func() {
		first, err := commands.DeployContract(projectDir)
		gomega.Expect(err).Should(gomega.BeNil(), first)
		second, err := commands.DeployContract(projectDir)
		gomega.Expect(err).Should(gomega.BeNil(), second)
		gomega.Expect(deployedAddress(first)).ShouldNot(gomega.Equal(deployedAddress(second)))
	})

	ginkgo.It("records the last deployment", func() {
		out, err := commands.ShowDeployment("json")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		var record models.Deployment
		gomega.Expect(json.Unmarshal([]byte(out), &record)).Should(gomega.Succeed())
		gomega.Expect(record.Contract).Should(gomega.Equal(constants.DefaultContractName))
		gomega.Expect(record.CodeVerified).Should(gomega.BeTrue())
		gomega.Expect(record.SmokeValue).Should(gomega.Equal("1"))
	})

	ginkgo.It("verifies the recorded deployment", func() {
		out, err := commands.VerifyContract(projectDir)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("=== Contract Details ==="))
		gomega.Expect(out).Should(gomega.ContainSubstring("Initial nextLocationId: 1"))
	})

	ginkgo.It("reports a failing smoke test without failing", func() {
		dir := writeProject(testutils.EmptyInitCode)
		defer os.RemoveAll(dir)
		out, err := commands.DeployContract(dir, "--no-record")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Contract deployment failed - no code at address"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Error testing contract functionality"))
	})

	ginkgo.It("fails with exit status 1 when the contract is not compiled", func() {
		out, err := commands.DeployContract(projectDir, "--contract", "NotCompiled")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("Deployment failed:"))
		gomega.Expect(out).ShouldNot(gomega.ContainSubstring("Transaction hash:"))
	})
})
