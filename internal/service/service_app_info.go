package service

import (
	"context"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns the build information service. The version
// comes from cfg.Version and must not be empty.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		logger.Error().Msg("app version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{appVersion: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.appVersion
}
