package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Vault:   ClientVault{FilePath: "netconfig.dat"},
		Storage: ClientStorage{DB: ClientDB{DSN: "history.db"}},
		Shell: ClientShell{
			PollInterval:   100 * time.Millisecond,
			ChunkSize:      4096,
			ScrollbackSize: 1 << 20,
			HistoryLimit:   500,
		},
		Adapter: ClientAdapter{ConnectTimeout: 10 * time.Second, TermType: "xterm"},
		Workers: ClientWorkers{HistoryBuffer: 64},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"zero history limit is allowed", func(c *ClientConfig) { c.Shell.HistoryLimit = 0 }, nil},
		{"empty vault path", func(c *ClientConfig) { c.Vault.FilePath = "" }, ErrInvalidVaultConfigs},
		{"empty dsn", func(c *ClientConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"zero poll interval", func(c *ClientConfig) { c.Shell.PollInterval = 0 }, ErrInvalidShellConfigs},
		{"zero chunk size", func(c *ClientConfig) { c.Shell.ChunkSize = 0 }, ErrInvalidShellConfigs},
		{"zero scrollback", func(c *ClientConfig) { c.Shell.ScrollbackSize = 0 }, ErrInvalidShellConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.ConnectTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"empty term", func(c *ClientConfig) { c.Adapter.TermType = "" }, ErrInvalidAdapterConfigs},
		{"zero buffer", func(c *ClientConfig) { c.Workers.HistoryBuffer = 0 }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStructuredConfig_ClientConfigMapping(t *testing.T) {
	cfg := &StructuredConfig{
		Vault:   Vault{FilePath: "v.dat"},
		Storage: Storage{DB: DB{DSN: "h.db"}},
		Shell:   Shell{PollInterval: time.Second, ChunkSize: 1, ScrollbackSize: 2, HistoryLimit: 3, TermType: "vt100", PersistHistory: true},
		Adapter: Adapter{ConnectTimeout: time.Minute, KnownHostsPath: "kh"},
		Workers: Workers{HistoryBuffer: 4},
		Log:     Log{FilePath: "c.log"},
	}

	client := cfg.ClientConfig()

	assert.Equal(t, "v.dat", client.Vault.FilePath)
	assert.Equal(t, "h.db", client.Storage.DB.DSN)
	assert.Equal(t, ClientShell{PollInterval: time.Second, ChunkSize: 1, ScrollbackSize: 2, HistoryLimit: 3, PersistHistory: true}, client.Shell)
	assert.Equal(t, ClientAdapter{ConnectTimeout: time.Minute, KnownHostsPath: "kh", TermType: "vt100"}, client.Adapter)
	assert.Equal(t, 4, client.Workers.HistoryBuffer)
	assert.Equal(t, "c.log", client.LogFile)
}
