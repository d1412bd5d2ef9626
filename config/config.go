// Package config loads the operator configuration from flags, environment
// variables and an optional config file, and exposes it as chainparams.Args.
package config

import (
	"fmt"
	"strings"

	"github.com/setavenger/chainparams/chainparams"
	"github.com/setavenger/chainparams/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	NetworkKey    = "network"
	LogLevelKey   = "log-level"
	LogDirKey     = "log-dir"
	ConfigFileKey = "config"

	EnvPrefix = "CHAINPARAMS"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(NetworkKey, "main", "network to load: main, test, devnet or regtest")
	flags.String(LogLevelKey, "info", "log level: trace, debug, info, warn, error")
	flags.String(LogDirKey, "", "directory to write chainparams.log into, console only when empty")
	flags.String(ConfigFileKey, "", "path of a config file (yaml, toml or json)")
	AddOverrideFlags(flags)
}

// AddOverrideFlags registers one flag per devnet and regtest override.
func AddOverrideFlags(flags *pflag.FlagSet) {
	for _, opt := range chainparams.Options {
		usage := fmt.Sprintf("%s (%s only)", opt.Usage, strings.Join(opt.Networks, ", "))
		switch {
		case opt.Bool:
			flags.Bool(opt.Name, false, usage)
		case opt.Multi:
			flags.StringArray(opt.Name, nil, usage)
		default:
			flags.String(opt.Name, "", usage)
		}
	}
}

// Config implements chainparams.Args on top of viper. Flags win over the
// environment, the environment wins over the config file.
type Config struct {
	v     *viper.Viper
	flags *pflag.FlagSet
}

var _ chainparams.Args = (*Config)(nil)

// Load binds the parsed flag set. Environment variables use the CHAINPARAMS_
// prefix with dashes turned into underscores, e.g. CHAINPARAMS_LOG_LEVEL.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		logging.L.Debug().Str("path", v.ConfigFileUsed()).Msg("loaded config file")
	}

	return &Config{v: v, flags: flags}, nil
}

func (c *Config) Network() string { return c.v.GetString(NetworkKey) }

func (c *Config) LogLevel() string { return c.v.GetString(LogLevelKey) }

func (c *Config) LogDir() string { return c.v.GetString(LogDirKey) }

// IsArgSet ignores flag defaults, only explicit values count.
func (c *Config) IsArgSet(name string) bool {
	return c.v.IsSet(name)
}

func (c *Config) GetArg(name, def string) string {
	if !c.IsArgSet(name) {
		return def
	}
	return c.v.GetString(name)
}

func (c *Config) GetArgs(name string) []string {
	if !c.IsArgSet(name) {
		return nil
	}
	if f := c.flags.Lookup(name); f != nil && f.Changed {
		if values, err := c.flags.GetStringArray(name); err == nil {
			return values
		}
	}
	return c.v.GetStringSlice(name)
}

func (c *Config) GetBoolArg(name string, def bool) bool {
	if !c.IsArgSet(name) {
		return def
	}
	return chainparams.InterpretBool(c.v.GetString(name))
}

// ApplyLogging configures the global logger from the loaded settings.
func (c *Config) ApplyLogging() error {
	if err := logging.SetLogLevelString(c.LogLevel()); err != nil {
		return err
	}
	if dir := c.LogDir(); dir != "" {
		return logging.SetLogOutput(dir, "chainparams.log")
	}
	return nil
}
