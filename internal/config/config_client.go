package config

import (
	"fmt"
	"time"
)

// ClientVault locates the encrypted server settings file.
type ClientVault struct {
	// FilePath is the vault file path.
	FilePath string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientShell holds the session reader and scrollback tuning.
type ClientShell struct {
	PollInterval   time.Duration
	ChunkSize      int
	ScrollbackSize int
	HistoryLimit   int
	// PersistHistory enables the SQLite history writer and the preload on
	// connect.
	PersistHistory bool
}

// ClientAdapter holds the SSH dial settings.
type ClientAdapter struct {
	ConnectTimeout time.Duration
	KnownHostsPath string
	// TermType is requested with the PTY.
	TermType string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HistoryBuffer is the history writer queue capacity.
	HistoryBuffer int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Vault   ClientVault
	Storage ClientStorage
	Shell   ClientShell
	Adapter ClientAdapter
	Workers ClientWorkers
	// LogFile is the client log destination.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		Vault: ClientVault{
			FilePath: cfg.Vault.FilePath,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Shell: ClientShell{
			PollInterval:   cfg.Shell.PollInterval,
			ChunkSize:      cfg.Shell.ChunkSize,
			ScrollbackSize: cfg.Shell.ScrollbackSize,
			HistoryLimit:   cfg.Shell.HistoryLimit,
			PersistHistory: cfg.Shell.PersistHistory,
		},
		Adapter: ClientAdapter{
			ConnectTimeout: cfg.Adapter.ConnectTimeout,
			KnownHostsPath: cfg.Adapter.KnownHostsPath,
			TermType:       cfg.Shell.TermType,
		},
		Workers: ClientWorkers{
			HistoryBuffer: cfg.Workers.HistoryBuffer,
		},
		LogFile: cfg.Log.FilePath,
	}
}
