package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every dependency answered
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

// HealthCheck pings the store behind the repositories
func HealthCheck(ctx context.Context, cfg *config.Config, store *repository.Store, log *logging.Logger) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Warn("Health check failed - database ping", "error", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = store.Backend
	result.Details["database_name"] = cfg.DBDatabase

	log.Debug("Health check passed - all systems operational")

	return result
}
