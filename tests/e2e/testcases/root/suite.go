// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package root

import (
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/tests/e2e/commands"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Root]", func() {
	ginkgo.It("lists the network presets", func() {
		out, err := commands.Run(commands.NetworkCmd, "list")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(out).Should(gomega.ContainSubstring(constants.CoreTestnetRPCURL))
		gomega.Expect(out).Should(gomega.ContainSubstring(constants.CoreMainnetRPCURL))
	})

	ginkgo.It("rejects unknown subcommands", func() {
		out, err := commands.Run(commands.ContractCmd, "undeploy")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("invalid subcommand"))
	})

	ginkgo.It("rejects mixing private keys and keystores", func() {
		out, err := commands.Run(commands.KeyCmd, "list", "--private-key", commands.PrivateKey(), "--keystore", "/tmp")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("mutually exclusive"))
	})
})
