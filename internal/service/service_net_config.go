package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/models"
)

type netConfigService struct {
	vault VaultService
	path  string

	logger *logger.Logger
}

// NewNetConfigService stores server records in the vault file at path.
func NewNetConfigService(vault VaultService, path string, logger *logger.Logger) NetConfigService {
	return &netConfigService{
		vault:  vault,
		path:   path,
		logger: logger,
	}
}

func (n *netConfigService) SaveServerConfig(ctx context.Context, password string, cfg models.ServerConfig) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if !cfg.IsComplete() {
		return ErrIncompleteServerConfig
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode server config: %w", err)
	}

	if err = n.vault.EncryptAndSave(ctx, password, data, n.path); err != nil {
		return err
	}

	n.logger.Info().
		Str("func", "netConfigService.SaveServerConfig").
		Str("server", cfg.ServerPath).
		Msg("server config saved")

	return nil
}

func (n *netConfigService) LoadServerConfig(ctx context.Context, password string) (models.ServerConfig, models.LoadStatus, error) {
	if err := ctx.Err(); err != nil {
		return models.ServerConfig{}, models.LoadMissing, err
	}

	plain, status := n.vault.DecryptAndLoad(ctx, password, n.path)
	if err := ctx.Err(); err != nil {
		return models.ServerConfig{}, models.LoadMissing, err
	}
	if status != models.LoadOK {
		return models.ServerConfig{}, status, nil
	}

	var cfg models.ServerConfig
	if err := json.Unmarshal(plain, &cfg); err != nil {
		n.logger.Debug().
			Str("func", "netConfigService.LoadServerConfig").
			Msg("vault decrypted but does not hold a server config")
		return models.ServerConfig{}, models.LoadMalformed, nil
	}

	return cfg.WithDefaults(), models.LoadOK, nil
}
