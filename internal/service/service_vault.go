// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-nas-keeper/internal/crypto"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
	"github.com/MKhiriev/go-nas-keeper/models"
)

type vaultService struct {
	cipher  crypto.VaultCipher
	storage store.VaultStorage

	logger *logger.Logger
}

// NewVaultService wires the vault cipher to file storage.
func NewVaultService(cipher crypto.VaultCipher, storage store.VaultStorage, logger *logger.Logger) VaultService {
	return &vaultService{
		cipher:  cipher,
		storage: storage,
		logger:  logger,
	}
}

func (v *vaultService) EncryptAndSave(ctx context.Context, password string, plaintext []byte, path string) error {
	blob, err := v.cipher.Encrypt(password, plaintext)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultService.EncryptAndSave").Msg("failed to encrypt vault payload")
		return fmt.Errorf("encrypt vault: %w", err)
	}

	if err = v.storage.Save(ctx, path, blob); err != nil {
		v.logger.Err(err).Str("func", "vaultService.EncryptAndSave").Str("path", path).Msg("failed to save vault file")
		return fmt.Errorf("save vault: %w", err)
	}

	return nil
}

func (v *vaultService) DecryptAndLoad(ctx context.Context, password, path string) ([]byte, models.LoadStatus) {
	blob, err := v.storage.Load(ctx, path)
	if errors.Is(err, store.ErrVaultNotFound) {
		return nil, v.fail(path, models.LoadMissing)
	}
	if err != nil {
		if ctx.Err() != nil {
			// cancelled before the file was read; nothing is known about it
			return nil, v.fail(path, models.LoadMissing)
		}
		// unreadable counts as structurally broken
		return nil, v.fail(path, models.LoadMalformed)
	}

	plain, err := v.cipher.Decrypt(password, blob)
	switch {
	case errors.Is(err, crypto.ErrCiphertextTooShort), errors.Is(err, crypto.ErrInvalidBlockSize):
		return nil, v.fail(path, models.LoadMalformed)
	case err != nil:
		return nil, v.fail(path, models.LoadWrongPasswordOrCorrupt)
	}

	if !utf8.Valid(plain) {
		return nil, v.fail(path, models.LoadWrongPasswordOrCorrupt)
	}

	return plain, models.LoadOK
}

// fail logs the status only. Password and plaintext never reach the log.
func (v *vaultService) fail(path string, status models.LoadStatus) models.LoadStatus {
	v.logger.Debug().
		Str("func", "vaultService.DecryptAndLoad").
		Str("path", path).
		Stringer("status", status).
		Msg("vault not loaded")
	return status
}
