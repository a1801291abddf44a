package service

import (
	"github.com/MKhiriev/go-nas-keeper/internal/config"
	"github.com/MKhiriev/go-nas-keeper/internal/crypto"
	"github.com/MKhiriev/go-nas-keeper/internal/logger"
	"github.com/MKhiriev/go-nas-keeper/internal/store"
	"github.com/MKhiriev/go-nas-keeper/models"
)

// ClientServices groups the services used by the console client.
type ClientServices struct {
	VaultService     VaultService
	NetConfigService NetConfigService
	HistoryService   HistoryService
	AppInfoService   AppInfoService
}

func NewClientServices(storages *store.ClientStorages, cfg config.ClientVault, info models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	vaultSvc := NewVaultService(crypto.NewVaultCipher(), storages.Vault, logger)

	return &ClientServices{
		VaultService:     vaultSvc,
		NetConfigService: NewNetConfigService(vaultSvc, cfg.FilePath, logger),
		HistoryService:   NewHistoryService(storages.History, logger),
		AppInfoService:   NewAppInfoService(info),
	}
}
