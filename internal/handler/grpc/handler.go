// Package grpc implements the gRPC transport of the registry validator.
//
// The validator exposes the standard gRPC health service so that load
// balancers and orchestrators can probe it, and logs every unary call with
// the caller's trace id.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-registry-validator/internal/logger"
	"github.com/MKhiriev/go-registry-validator/internal/service"
	"github.com/MKhiriev/go-registry-validator/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ValidationServiceName is the health-checked name of the validation service.
const ValidationServiceName = "registry.validator.v1.Validation"

const traceIDKey = "x-trace-id"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health   *health.Server
	traceIDs *utils.UUIDGenerator

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for the server as a
// whole and for [ValidationServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ValidationServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Register installs the handler's services on s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// ServerOptions returns the interceptors the gRPC server is built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{grpc.ChainUnaryInterceptor(h.unaryLogging)}
}

// Shutdown reports NOT_SERVING for every service so probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// unaryLogging attaches a logger carrying the caller's trace id to the call
// context and writes one entry per call.
func (h *Handler) unaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	start := time.Now()
	resp, err := next(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}
