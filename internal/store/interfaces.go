package store

import (
	"context"

	"github.com/MKhiriev/go-nas-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStorage reads and writes whole vault files.
type VaultStorage interface {
	// Save replaces the file at path with blob atomically: readers see either
	// the previous content or the new one, never a mix.
	Save(ctx context.Context, path string, blob []byte) error
	// Load returns the full content of the file at path, or an error wrapping
	// [ErrVaultNotFound] when there is none.
	Load(ctx context.Context, path string) ([]byte, error)
}

// HistoryRepository persists submitted shell commands per host.
type HistoryRepository interface {
	Append(ctx context.Context, entry models.HistoryEntry) error
	// Recent returns at most limit newest entries for host, oldest first.
	Recent(ctx context.Context, host string, limit int) ([]models.HistoryEntry, error)
	// Clear removes the history of host, or of every host when host is empty.
	Clear(ctx context.Context, host string) error
}
