package service

import (
	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
)

type Services struct {
	ValidationService ValidationService
	AppInfoService    AppInfoService
}

// NewServices builds the service layer over engine. The validation service
// is wrapped with call logging.
func NewServices(engine Engine, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validationService := NewValidationService(engine, cfg.Validation, logger)

	return &Services{
		ValidationService: NewValidationLoggingService().Wrap(validationService),
		AppInfoService:    appInfoService,
	}, nil
}
