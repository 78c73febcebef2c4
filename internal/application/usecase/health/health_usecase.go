package health

import (
	"context"

	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected = "connected"
	DatabaseError     = "error"
)

// Prober runs a trivial query against the database.
type Prober interface {
	Probe(ctx context.Context) error
}

type Report struct {
	Status   string            `json:"status"`
	Database string            `json:"database"`
	Details  map[string]string `json:"details"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type HealthUseCase struct {
	db      Prober
	version string
	logger  logger.Logger
}

func NewHealthUseCase(db Prober, version string, log logger.Logger) *HealthUseCase {
	return &HealthUseCase{db: db, version: version, logger: log}
}

// Check probes the database once. There is no retry and no caching.
func (uc *HealthUseCase) Check(ctx context.Context) Report {
	report := Report{
		Status:   StatusHealthy,
		Database: DatabaseConnected,
		Details:  map[string]string{"version": uc.version},
	}
	if err := uc.db.Probe(ctx); err != nil {
		uc.logger.Warn("Health check could not reach the database")
		metrics.HealthCheckFailuresTotal.Inc()
		report.Status = StatusUnhealthy
		report.Database = DatabaseError
		report.Details["database_error"] = err.Error()
	}
	return report
}
