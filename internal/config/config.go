// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-nas-keeper client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the location of the encrypted server settings file.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds the command history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Shell holds the interactive session tuning knobs.
	Shell Shell `envPrefix:"SHELL_"`

	// Adapter holds the SSH transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the client log destination.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault locates the encrypted configuration file.
type Vault struct {
	// FilePath is the vault file path.
	// Env: VAULT_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the history database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "history.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Shell holds interactive session settings.
type Shell struct {
	// PollInterval is how long the reader sleeps when no data is ready.
	// Env: SHELL_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// ChunkSize is the maximum number of bytes taken from the channel per read.
	// Env: SHELL_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`

	// ScrollbackSize bounds the text kept for display, in bytes.
	// Env: SHELL_SCROLLBACK_SIZE
	ScrollbackSize int `env:"SCROLLBACK_SIZE"`

	// HistoryLimit is how many persisted commands are preloaded on connect.
	// Env: SHELL_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// TermType is the terminal type requested with the PTY.
	// Env: SHELL_TERM
	TermType string `env:"TERM"`

	// PersistHistory writes submitted commands to the history database.
	// Off by default: the database is not encrypted.
	// Env: SHELL_PERSIST_HISTORY
	PersistHistory bool `env:"PERSIST_HISTORY"`
}

// Adapter holds SSH transport settings.
type Adapter struct {
	// ConnectTimeout bounds dialing plus the SSH handshake.
	// Env: ADAPTER_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// KnownHostsPath is the known_hosts file used for host key checks.
	// Empty disables verification.
	// Env: ADAPTER_KNOWN_HOSTS
	KnownHostsPath string `env:"KNOWN_HOSTS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HistoryBuffer is the capacity of the history writer queue.
	// Env: WORKERS_HISTORY_BUFFER
	HistoryBuffer int `env:"HISTORY_BUFFER"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the client log file. Empty selects a file next to the
	// executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// Default values applied to fields that no source has set.
const (
	DefaultVaultFilePath  = "netconfig.dat"
	DefaultDSN            = "history.db"
	DefaultPollInterval   = 100 * time.Millisecond
	DefaultChunkSize      = 4096
	DefaultScrollbackSize = 1 << 20
	DefaultHistoryLimit   = 500
	DefaultTermType       = "xterm"
	DefaultConnectTimeout = 10 * time.Second
	DefaultHistoryBuffer  = 64
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still unset afterwards receive their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
