// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] after defaults are applied.
// Only values no source could have meant survive here: negative sizes and
// durations.
func (cfg *StructuredConfig) validate() error {
	if cfg.Shell.PollInterval < 0 || cfg.Shell.ChunkSize < 0 ||
		cfg.Shell.ScrollbackSize < 0 || cfg.Shell.HistoryLimit < 0 {
		return ErrInvalidShellConfigs
	}

	if cfg.Adapter.ConnectTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HistoryBuffer < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Vault.FilePath == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Shell.PollInterval <= 0 || cfg.Shell.ChunkSize <= 0 || cfg.Shell.ScrollbackSize <= 0 {
		return ErrInvalidShellConfigs
	}

	if cfg.Adapter.ConnectTimeout <= 0 || cfg.Adapter.TermType == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HistoryBuffer <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
