package domain

import (
	"context"

	"github.com/reelworthy/ragchat/internal/observability"
)

// HealthService checks connectivity of the backing stores.
type HealthService struct {
	database string
	stores   map[string]VectorStore
}

// NewHealthService creates a health checker over the named stores.
func NewHealthService(database string, stores map[string]VectorStore) *HealthService {
	return &HealthService{
		database: database,
		stores:   stores,
	}
}

// Check pings every store and aggregates: healthy when all respond,
// unhealthy when none do, degraded otherwise.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	logger := observability.FromContext(ctx)

	containers := make(map[string]bool, len(s.stores))
	healthy := 0
	for name, store := range s.stores {
		err := store.Ping(ctx)
		if err != nil {
			logger.Warn("store health check failed",
				observability.String("store", name),
				observability.Error(err))
		} else {
			healthy++
		}
		containers[name] = err == nil
	}

	status := StatusDegraded
	switch healthy {
	case len(s.stores):
		status = StatusHealthy
	case 0:
		status = StatusUnhealthy
	}

	return HealthReport{
		Status:     status,
		Database:   s.database,
		Containers: containers,
	}
}
