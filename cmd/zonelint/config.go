package main

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// cliConfig mirrors the subset of zone.Options a user can set from a
// config file or flags; the zone.Options value itself is assembled
// from this by buildOptions.
type cliConfig struct {
	Origin       string `mapstructure:"origin" yaml:"origin"`
	DefaultTTL   uint32 `mapstructure:"default_ttl" yaml:"default_ttl"`
	DefaultClass string `mapstructure:"default_class" yaml:"default_class"`
	FriendlyTTLs bool   `mapstructure:"friendly_ttls" yaml:"friendly_ttls"`
	NoIncludes   bool   `mapstructure:"no_includes" yaml:"no_includes"`
	Secondary    bool   `mapstructure:"secondary" yaml:"secondary"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		DefaultTTL:   3600,
		DefaultClass: "IN",
	}
}

// loadConfig layers built-in defaults, an optional YAML config file
// (default ~/.zonelint.yaml, resolved through go-homedir), and
// whatever cobra flags the caller already bound into v.
func loadConfig(v *viper.Viper, configPath string) (cliConfig, error) {
	cfg := defaultConfig()
	v.SetDefault("origin", cfg.Origin)
	v.SetDefault("default_ttl", cfg.DefaultTTL)
	v.SetDefault("default_class", cfg.DefaultClass)
	v.SetDefault("friendly_ttls", cfg.FriendlyTTLs)
	v.SetDefault("no_includes", cfg.NoIncludes)
	v.SetDefault("secondary", cfg.Secondary)

	if configPath == "" {
		configPath = "~/.zonelint.yaml"
	}
	resolved, err := homedir.Expand(configPath)
	if err != nil {
		return cfg, err
	}

	v.SetConfigFile(resolved)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
