package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	cfg, err := loadConfig(v, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, uint32(3600), cfg.DefaultTTL)
	require.Equal(t, "IN", cfg.DefaultClass)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zonelint.yaml")
	yaml := "origin: example.com.\ndefault_ttl: 7200\ndefault_class: CH\nfriendly_ttls: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	v := viper.New()
	cfg, err := loadConfig(v, path)
	require.NoError(t, err)
	require.Equal(t, "example.com.", cfg.Origin)
	require.Equal(t, uint32(7200), cfg.DefaultTTL)
	require.Equal(t, "CH", cfg.DefaultClass)
	require.True(t, cfg.FriendlyTTLs)
}
