// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urban-foraging/ufn/cmd/configcmd"
	"github.com/urban-foraging/ufn/cmd/contractcmd"
	"github.com/urban-foraging/ufn/cmd/deploymentscmd"
	"github.com/urban-foraging/ufn/cmd/flags"
	"github.com/urban-foraging/ufn/cmd/keycmd"
	"github.com/urban-foraging/ufn/cmd/networkcmd"
	"github.com/urban-foraging/ufn/internal/migrations"
	"github.com/urban-foraging/ufn/pkg/application"
	"github.com/urban-foraging/ufn/pkg/cobrautils"
	"github.com/urban-foraging/ufn/pkg/config"
	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/metrics"
	"github.com/urban-foraging/ufn/pkg/prompts"
	"github.com/urban-foraging/ufn/pkg/utils"
	"github.com/urban-foraging/ufn/pkg/ux"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.UFN

	Version = ""

	cfgFile string
)

// NewRootCmd builds the command tree of every ufn invocation
func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "ufn",
		Long: `ufn deploys the UrbanForagingNetwork smart contract to Core networks.

It loads the compiled contract from your hardhat (or foundry) build output,
deploys it with your signer, waits for the deployment to be confirmed and
checks the contract is live by calling one of its read only methods.

To get started, compile your contracts and run ufn contract deploy.`,
		PersistentPreRunE: createApp,
		PersistentPostRun: handleTracking,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	app = application.New()
	app.Conf = config.New()

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ufn/config.json)")
	rootCmd.PersistentFlags().String(constants.ConfigLogLevelKey, constants.DefaultLogLevel, "log level for the application")
	if err := app.Conf.BindFlag(constants.ConfigLogLevelKey, rootCmd.PersistentFlags().Lookup(constants.ConfigLogLevelKey)); err != nil {
		// no logger here yet
		fmt.Printf("failed binding log level flag: %s\n", err)
		os.Exit(1)
	}
	if err := flags.AddNetworkFlags(app, rootCmd); err != nil {
		fmt.Printf("failed binding network flags: %s\n", err)
		os.Exit(1)
	}

	// add sub commands
	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(keycmd.NewCmd(app))
	rootCmd.AddCommand(deploymentscmd.NewCmd(app))
	rootCmd.AddCommand(networkcmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	cobrautils.ConfigureRootCmd(rootCmd)

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)

	fs := afero.NewOsFs()
	if cfgFile == "" {
		cfgFile = filepath.Join(baseDir, constants.ConfigFileName)
	}
	app.Conf.SetConfig(log, cfgFile)
	// hardhat projects keep PRIVATE_KEY and friends in the project .env
	if err := app.Conf.LoadDotEnv(log, fs, constants.DotEnvFileName); err != nil {
		return fmt.Errorf("failed loading %s: %w", constants.DotEnvFileName, err)
	}
	app.Setup(baseDir, log, app.Conf, prompts.NewPrompter(), fs)
	if err := migrations.RunMigrations(app); err != nil {
		return err
	}
	log.Info("command started", zap.String("command", cmd.CommandPath()), zap.String("version", Version))
	return nil
}

func setupEnv() (string, error) {
	// Set base dir
	baseDir := utils.UserHomePath(constants.BaseDirName)

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	// the config file is not read yet, only the flag and UFN_LOG_LEVEL apply
	logLevel := app.Conf.GetConfigStringValue(constants.ConfigLogLevelKey)
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	})
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, level)
	return zap.New(core), nil
}

func handleTracking(cmd *cobra.Command, _ []string) {
	flagValues := map[string]string{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if f.Name == "private-key" || f.Name == "keystore" {
			return
		}
		flagValues[f.Name] = f.Value.String()
	})
	metrics.HandleTracking(cmd, app, Version, flagValues)
	if app.Log != nil {
		_ = app.Log.Sync()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	cobrautils.HandleErrors(err)
}
