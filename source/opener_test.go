package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func TestOpenerPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fragment.zone")
	require.NoError(t, os.WriteFile(path, []byte("www IN A 192.0.2.1\n"), 0o644))

	rc, err := New().Open(path, nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "www IN A 192.0.2.1\n", string(data))
}

func TestOpenerDecompressesLZ4(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fragment.zone.lz4")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := lz4.NewWriter(f)
	_, err = w.Write([]byte("www IN A 192.0.2.1\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	rc, err := New().Open(path, nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "www IN A 192.0.2.1\n", string(data))
}

func TestOpenerMissingFile(t *testing.T) {
	_, err := New().Open(filepath.Join(t.TempDir(), "missing.zone"), nil)
	require.Error(t, err)
}
