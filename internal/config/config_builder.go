package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Vault.FilePath == "" {
		cfg.Vault.FilePath = DefaultVaultFilePath
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Shell.PollInterval == 0 {
		cfg.Shell.PollInterval = DefaultPollInterval
	}
	if cfg.Shell.ChunkSize == 0 {
		cfg.Shell.ChunkSize = DefaultChunkSize
	}
	if cfg.Shell.ScrollbackSize == 0 {
		cfg.Shell.ScrollbackSize = DefaultScrollbackSize
	}
	if cfg.Shell.HistoryLimit == 0 {
		cfg.Shell.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.Shell.TermType == "" {
		cfg.Shell.TermType = DefaultTermType
	}
	if cfg.Adapter.ConnectTimeout == 0 {
		cfg.Adapter.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.Workers.HistoryBuffer == 0 {
		cfg.Workers.HistoryBuffer = DefaultHistoryBuffer
	}
}
