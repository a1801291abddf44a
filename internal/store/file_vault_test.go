package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
)

func TestFileVaultStorage_SaveAndLoad(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "netconfig.dat")
	blob := []byte{0x00, 0x01, 0xfe, 0xff, 'n', 'a', 's'}

	require.NoError(t, s.Save(ctx, path, blob))

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestFileVaultStorage_SaveOverwrites(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "netconfig.dat")

	require.NoError(t, s.Save(ctx, path, []byte("first, and longer than the second")))
	require.NoError(t, s.Save(ctx, path, []byte("second")))

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestFileVaultStorage_SaveLeavesNoTempFiles(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "netconfig.dat")

	require.NoError(t, s.Save(context.Background(), path, []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "netconfig.dat", entries[0].Name())
}

func TestFileVaultStorage_SaveSetsOwnerOnlyPermissions(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	path := filepath.Join(t.TempDir(), "netconfig.dat")

	require.NoError(t, s.Save(context.Background(), path, []byte("data")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(vaultFilePerm), info.Mode().Perm())
}

func TestFileVaultStorage_SaveCreatesParentDir(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	path := filepath.Join(t.TempDir(), "nested", "dir", "netconfig.dat")

	require.NoError(t, s.Save(context.Background(), path, []byte("data")))
	assert.FileExists(t, path)
}

func TestFileVaultStorage_SaveFailureKeepsPreviousFile(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "netconfig.dat")
	require.NoError(t, s.Save(ctx, path, []byte("original")))

	// a directory in place of the target makes the final rename fail
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0o700))
	require.Error(t, s.Save(ctx, blocked, []byte("new")))

	got, err := s.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp file must be removed after a failed save")
}

func TestFileVaultStorage_LoadMissing(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())

	got, err := s.Load(context.Background(), filepath.Join(t.TempDir(), "absent.dat"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVaultNotFound)
	assert.Nil(t, got)
}

func TestFileVaultStorage_LoadDirectoryIsNotMissing(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())

	_, err := s.Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVaultNotFound)
}

func TestFileVaultStorage_CanceledContext(t *testing.T) {
	s := NewFileVaultStorage(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	path := filepath.Join(t.TempDir(), "netconfig.dat")

	assert.ErrorIs(t, s.Save(ctx, path, []byte("x")), context.Canceled)
	_, err := s.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}
