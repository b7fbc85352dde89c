package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/internal/pkg/database"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil // Skip if no PostgreSQL client
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil // Skip if no Redis client
	}
	return r.client.Client.Ping(ctx).Err()
}

// PingResponse is the body of the ping endpoint
type PingResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

// NewPingHandler returns a handler reporting the service as up
func NewPingHandler(serviceName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, PingResponse{
			Service: serviceName,
			Status:  "ok",
		})
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...HealthChecker) {
	// Basic ping endpoint
	e.GET("/ping", NewPingHandler(serviceName))

	// Liveness: the process is up
	e.GET("/health/live", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Readiness: every dependency answers within the deadline
	readiness := func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				return c.String(http.StatusServiceUnavailable, "UNAVAILABLE")
			}
		}
		return c.String(http.StatusOK, "OK")
	}

	e.GET("/health", readiness)
	e.GET("/health/ready", readiness)
}
