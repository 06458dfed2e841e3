package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfigWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zonelint.yaml")
	cfgFile = path
	defer func() { cfgFile = "" }()

	require.NoError(t, initConfigCmd.RunE(initConfigCmd, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "default_ttl: 3600")
}

func TestInitConfigRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zonelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("origin: example.com.\n"), 0o644))
	cfgFile = path
	defer func() { cfgFile = "" }()

	err := initConfigCmd.RunE(initConfigCmd, nil)
	require.Error(t, err)
}
