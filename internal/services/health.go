package services

import (
	"context"
	"time"

	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

const healthProbeTimeout = 2 * time.Second

// HealthChecker is satisfied by the storage layer.
type HealthChecker interface {
	HealthCheck(ctx context.Context) bool
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h HealthStatus) OK() bool { return h.Status == "ok" }

type HealthService interface {
	Check(ctx context.Context) HealthStatus
}

type healthService struct {
	log     *logger.Logger
	store   HealthChecker
	metrics *observability.Metrics
}

func NewHealthService(log *logger.Logger, store HealthChecker, metrics *observability.Metrics) HealthService {
	return &healthService{
		log:     log.With("service", "HealthService"),
		store:   store,
		metrics: metrics,
	}
}

func (s *healthService) Check(ctx context.Context) HealthStatus {
	if s.store == nil {
		return HealthStatus{Status: "ok", Database: "disabled"}
	}
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	up := s.store.HealthCheck(ctx)
	s.metrics.SetDBUp(up)
	if !up {
		s.log.Warn("Database health probe failed")
		return HealthStatus{Status: "degraded", Database: "down"}
	}
	return HealthStatus{Status: "ok", Database: "up"}
}
