// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/urban-foraging/ufn/pkg/constants"
)

// Home is used as HOME of every ufn invocation, so records and logs stay
// out of the user dir
var Home = filepath.Join(os.TempDir(), "ufn-e2e-home")

func RPCURL() string {
	if url := os.Getenv(RPCURLEnvVar); url != "" {
		return url
	}
	return DefaultRPCURL
}

func PrivateKey() string {
	if k := os.Getenv(PrivateKeyEnvVar); k != "" {
		return k
	}
	return DefaultPrivateKey
}

// env drops any PRIVATE_KEY of the test environment, so that the one in the
// project .env is used
func env() []string {
	var vars []string
	for _, v := range os.Environ() {
		if strings.HasPrefix(v, constants.HardhatPrivateKeyEnv+"=") || strings.HasPrefix(v, "HOME=") {
			continue
		}
		vars = append(vars, v)
	}
	return append(vars, "HOME="+Home)
}

/* #nosec G204 */
func Run(args ...string) (string, error) {
	cmd := exec.Command(CLIBinary, args...)
	cmd.Env = env()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// RunInDir runs ufn from [dir], as when invoked from a hardhat project
/* #nosec G204 */
func RunInDir(dir string, args ...string) (string, error) {
	binary, err := filepath.Abs(CLIBinary)
	if err != nil {
		return "", err
	}
	cmd := exec.Command(binary, args...)
	cmd.Dir = dir
	cmd.Env = env()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func DeployContract(dir string, extraArgs ...string) (string, error) {
	args := []string{
		ContractCmd,
		"deploy",
		"--network", constants.LocalhostKey,
		"--rpc-url", RPCURL(),
	}
	return RunInDir(dir, append(args, extraArgs...)...)
}

func VerifyContract(dir string, extraArgs ...string) (string, error) {
	args := []string{
		ContractCmd,
		"verify",
		"--network", constants.LocalhostKey,
		"--rpc-url", RPCURL(),
	}
	return RunInDir(dir, append(args, extraArgs...)...)
}

func ShowDeployment(format string) (string, error) {
	return Run(DeploymentsCmd, "show", "--network", constants.LocalhostKey, "--format", format)
}
