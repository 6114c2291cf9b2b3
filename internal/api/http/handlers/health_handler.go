package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/bornebyte/notes/internal/observability"
	"github.com/bornebyte/notes/internal/persistence"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	pg      *persistence.Postgres
	redis   *persistence.Redis
	metrics *observability.Metrics
}

// NewHealthHandler constructs handler.
func NewHealthHandler(pg *persistence.Postgres, redis *persistence.Redis, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{pg: pg, redis: redis, metrics: metrics}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready. Redis is optional, so its failure degrades the
// payload without flipping readiness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{}
	status := "ok"

	if h.pg != nil && h.pg.Pool != nil {
		if err := h.pg.Pool.Ping(c.Context()); err != nil {
			checks["postgres"] = "unreachable"
			status = "degraded"
		} else {
			checks["postgres"] = "ok"
		}
	} else {
		checks["postgres"] = "not configured"
		status = "degraded"
	}

	if err := h.redis.Ping(c.Context()); err != nil {
		checks["redis"] = "unreachable"
	} else {
		checks["redis"] = "ok"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"checks":  checks,
		"metrics": h.metrics.Snapshot(),
	})
}
