package service

import (
	"github.com/MKhiriev/go-nas-keeper/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) AppInfoService {
	return &appInfoService{info: info}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.info
}

func (s *appInfoService) Version() string {
	if s.info.BuildVersion() == "" {
		return notAvailable
	}
	return s.info.BuildVersion()
}
