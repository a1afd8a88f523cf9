// Package grpc exposes the standard gRPC health service of the pipeline.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-privacy-pipeline/internal/logger"
	"github.com/MKhiriev/go-privacy-pipeline/internal/service"
)

// PipelineService is the service name probed by health checks that care
// whether the pipeline can encrypt. The empty name reports the process.
const PipelineService = "privacy.pipeline.Pipeline"

// Handler is the root gRPC transport handler.
//
// It owns a grpc.health.v1 server whose pipeline status follows the
// encryption state reported by the service layer.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. services is not used until
// [Handler.Refresh] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register adds the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh reports the pipeline as serving when a master key is configured.
// Uploads cannot be stored without one.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.Pipeline.Status(ctx).Encryption.MasterKeyConfigured {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(PipelineService, status)
	h.logger.Info().Str("service", PipelineService).Str("status", status.String()).Msg("health status updated")
}

// Shutdown flips every service to NOT_SERVING so that watchers drain before
// the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
