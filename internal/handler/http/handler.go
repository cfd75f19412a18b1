package http

import (
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/config"
	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/service"
	"github.com/MKhiriev/go-registry-validator/internal/utils"
)

// maxRequestBodySize limits the size of a decoded validation request body.
const maxRequestBodySize = 4 << 20

type Handler struct {
	services *service.Services

	tokenSignKey   string
	tokenIssuer    string
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokenSignKey:   cfg.App.TokenSignKey,
		tokenIssuer:    cfg.App.TokenIssuer,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
