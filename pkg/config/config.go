// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urban-foraging/ufn/pkg/constants"
	"github.com/urban-foraging/ufn/pkg/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	v.SetDefault(constants.ConfigNetworkKey, constants.DefaultNetworkKey)
	v.SetDefault(constants.ConfigArtifactsKey, constants.DefaultArtifactsDir)
	v.SetDefault(constants.ConfigContractKey, constants.DefaultContractName)
	v.SetDefault(constants.ConfigConfirmationsKey, constants.DefaultConfirmations)
	v.SetDefault(constants.ConfigTimeoutKey, constants.DefaultTimeout)
	v.SetDefault(constants.ConfigSmokeMethodKey, constants.DefaultSmokeMethod)
	v.SetDefault(constants.ConfigLogLevelKey, constants.DefaultLogLevel)
	return &Config{v: v}
}

func (c *Config) SetConfig(log *zap.Logger, s string) {
	c.v.SetConfigType("json")
	c.v.AddConfigPath(filepath.Dir(s))
	c.v.SetConfigFile(s)
	// If a config file is found, read it in.
	if err := c.v.ReadInConfig(); err == nil {
		log.Info("Using config file", zap.String("config-file", s))
	} else {
		log.Info("No config file found", zap.String("config-file", s))
	}
}

// LoadDotEnv loads hardhat style .env files into the process environment.
// Variables already present in the environment win.
func (*Config) LoadDotEnv(log *zap.Logger, fs afero.Fs, paths ...string) error {
	for _, p := range paths {
		if !utils.FileExists(fs, p) {
			continue
		}
		f, err := fs.Open(p)
		if err != nil {
			return err
		}
		envMap, err := godotenv.Parse(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		for k, v := range envMap {
			if _, ok := os.LookupEnv(k); !ok {
				if err := os.Setenv(k, v); err != nil {
					return err
				}
			}
		}
		log.Info("Loaded env file", zap.String("env-file", p), zap.Int("vars", len(envMap)))
	}
	return nil
}

// BindFlags makes flag values take precedence over config file and env values
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	return c.v.BindPFlags(flags)
}

// BindFlag binds a single flag to a config key with a different name
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// SetConfigValue sets the value of a configuration key and persists it.
func (c *Config) SetConfigValue(key string, value interface{}) error {
	c.v.Set(key, value)
	if c.v.ConfigFileUsed() == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.v.ConfigFileUsed()), constants.DefaultPerms755); err != nil {
		return err
	}
	return c.v.WriteConfigAs(c.v.ConfigFileUsed())
}

func (c *Config) GetConfigBoolValue(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetConfigUint64Value(key string) uint64 {
	return c.v.GetUint64(key)
}

func (c *Config) GetConfigDurationValue(key string) time.Duration {
	return c.v.GetDuration(key)
}

// GetConfigListValue returns a list value, splitting comma separated entries
func (c *Config) GetConfigListValue(key string) []string {
	return utils.SplitList(c.v.GetStringSlice(key))
}

// GetPrivateKeys returns the configured signer keys, falling back to the
// hardhat PRIVATE_KEY convention
func (c *Config) GetPrivateKeys() []string {
	keys := c.GetConfigListValue(constants.ConfigPrivateKeysKey)
	if len(keys) == 0 {
		keys = utils.SplitList([]string{os.Getenv(constants.HardhatPrivateKeyEnv)})
	}
	return keys
}
