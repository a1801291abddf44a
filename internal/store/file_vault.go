// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
)

// vaultFilePerm keeps the encrypted settings readable by the owner only.
const vaultFilePerm = 0o600

// fileVaultStorage is the filesystem implementation of [VaultStorage].
type fileVaultStorage struct {
	logger *logger.Logger
}

// NewFileVaultStorage constructs a [VaultStorage] over the local filesystem.
func NewFileVaultStorage(logger *logger.Logger) VaultStorage {
	return &fileVaultStorage{logger: logger}
}

// Save writes blob to a temporary file in the directory of path, syncs it,
// and renames it over path. A failure at any step leaves the previous file
// untouched and removes the temporary one.
func (f *fileVaultStorage) Save(ctx context.Context, path string, blob []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(blob); err != nil {
		return fmt.Errorf("write temp vault file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp vault file: %w", err)
	}
	if err = tmp.Chmod(vaultFilePerm); err != nil {
		return fmt.Errorf("chmod temp vault file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp vault file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace vault file: %w", err)
	}

	f.logger.Debug().
		Str("func", "fileVaultStorage.Save").
		Str("path", path).
		Int("bytes", len(blob)).
		Msg("vault file written")

	return nil
}

// Load reads the whole file at path.
func (f *fileVaultStorage) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, path)
	}
	if err != nil {
		f.logger.Err(err).
			Str("func", "fileVaultStorage.Load").
			Str("path", path).
			Msg("failed to read vault file")
		return nil, fmt.Errorf("read vault file: %w", err)
	}

	return blob, nil
}
