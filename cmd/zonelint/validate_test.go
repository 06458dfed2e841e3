package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunValidateCountsRecords(t *testing.T) {
	cfg = defaultConfig()
	cfg.Origin = "example.com."

	dir := t.TempDir()
	path := filepath.Join(dir, "db.example.com")
	zoneText := "www IN A 192.0.2.1\nmail IN A 192.0.2.2\n"
	require.NoError(t, os.WriteFile(path, []byte(zoneText), 0o644))

	count, err := runValidate(path)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestRunValidateReportsSyntaxError(t *testing.T) {
	cfg = defaultConfig()
	cfg.Origin = "example.com."

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.zone")
	require.NoError(t, os.WriteFile(path, []byte(")\n"), 0o644))

	_, err := runValidate(path)
	require.Error(t, err)
}
