package service

import (
	"context"

	"github.com/MKhiriev/go-nas-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService persists opaque plaintext under a password in a single
// encrypted file.
type VaultService interface {
	// EncryptAndSave encrypts plaintext with a key derived from password and
	// atomically replaces the file at path. Encryption and I/O errors are
	// returned.
	EncryptAndSave(ctx context.Context, password string, plaintext []byte, path string) error

	// DecryptAndLoad reads and decrypts the file at path. It never returns an
	// error: every failure yields nil plaintext and a status other than
	// [models.LoadOK].
	DecryptAndLoad(ctx context.Context, password, path string) ([]byte, models.LoadStatus)
}

// NetConfigService stores the NAS connection record in the vault.
type NetConfigService interface {
	// SaveServerConfig rejects records with blank fields with
	// [ErrIncompleteServerConfig].
	SaveServerConfig(ctx context.Context, password string, cfg models.ServerConfig) error

	// LoadServerConfig returns the stored record with default ports filled
	// in. The error is non-nil only when ctx is done.
	LoadServerConfig(ctx context.Context, password string) (models.ServerConfig, models.LoadStatus, error)

}

// HistoryService reads and clears the persisted command history.
type HistoryService interface {
	// Preload returns up to limit commands for host, oldest first, ready for
	// a shell session's history.
	Preload(ctx context.Context, host string, limit int) ([]string, error)

	Clear(ctx context.Context, host string) error
}

// AppInfoService exposes the build metadata of the running binary.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
	// Version returns the build version, or "N/A" when not stamped.
	Version() string
}
