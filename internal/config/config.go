// Package config loads strata settings from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/ib-77/strata/pkg/collections/hashmap"
	"github.com/ib-77/strata/pkg/thread"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix = "STRATA"

	LogLevel = "log-level"
	Listen   = "listen"
	Lines    = "lines"
	Routes   = "routes"

	defaultLogLevel = "info"
	defaultListen   = ":8080"

	// route paths contain dots ("/index.html"), keep them out of the key path
	keyDelimiter = "::"
)

var v = newViper()

func newViper() *viper.Viper {
	nv := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	nv.SetDefault(LogLevel, defaultLogLevel)
	nv.SetDefault(Listen, defaultListen)
	return nv
}

// InitConfiguration resets the configuration, reads configFile when given and
// binds the flags of cmd. Flags set on the command line win over the
// environment, which wins over the file.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = newViper()

	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			zap.S().Errorw("failed to read config", "config file", configFile, "error", err)
			return fmt.Errorf("fail to read config file %q: %w", configFile, err)
		}
		zap.S().Debugw("using config file", "config file", v.ConfigFileUsed())
	}

	bindFlags(cmd, v)

	return nil
}

// bindFlags copies viper values into unset flags and changed flags into viper.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		} else if f.Changed {
			v.Set(f.Name, f.Value.String())
		}
	})
}

func GetLogLevel() string {
	return v.GetString(LogLevel)
}

func GetListenAddress() string {
	return v.GetString(Listen)
}

// GetLines returns the number of pool lines, at least one.
func GetLines() int {
	if !v.IsSet(Lines) {
		return thread.AvailableParallelism()
	}

	n := v.GetInt(Lines)
	if n < 1 {
		return 1
	}
	return n
}

// GetRoutes returns the static routes served by the serve command, keyed by
// path.
func GetRoutes() *hashmap.Map[string, string] {
	return hashmap.FromMap(v.GetStringMapString(Routes))
}
