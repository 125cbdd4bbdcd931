// Package grpc exposes the verifier over gRPC. It currently serves the
// standard grpc.health.v1 service backed by the verification service's
// store connectivity check.
package grpc

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-id-verifier/internal/logger"
	"github.com/MKhiriev/go-id-verifier/internal/service"
	"github.com/MKhiriev/go-id-verifier/models"
)

// ServiceName is the health-checked service name. The empty name reports
// overall server health.
const ServiceName = "verifier.VerificationService"

// connected is the connectivity value reported for a reachable store.
const connected = "CONNECTED"

// Handler is the root gRPC transport handler.
//
// It implements [healthpb.HealthServer]: a service is SERVING when both the
// object store and the record store are reachable.
type Handler struct {
	healthpb.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports the serving status of the verifier.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	health := h.services.VerificationService.Health(ctx)
	if !isServing(health) {
		h.logger.Warn().
			Str("object_storage", health.ObjectStorage).
			Str("record_store", health.RecordStore).
			Msg("health check reports NOT_SERVING")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

func isServing(health models.HealthStatus) bool {
	return strings.EqualFold(health.Status, "UP") &&
		health.ObjectStorage == connected &&
		health.RecordStore == connected
}
