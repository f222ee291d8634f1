package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const Version = "1.0.0"

// Pinger reports whether the session store is reachable and how its
// connection pool is doing.
type Pinger interface {
	HealthCheck(ctx context.Context) error
	GetStats() *redis.PoolStats
}

type HealthHandler struct {
	redis Pinger
}

func NewHealthHandler(redis Pinger) *HealthHandler {
	return &HealthHandler{redis: redis}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status, redisStatus := "ok", "connected"
	code := fiber.StatusOK
	if err := h.redis.HealthCheck(ctx); err != nil {
		status, redisStatus = "degraded", "unreachable"
		code = fiber.StatusServiceUnavailable
	}

	body := fiber.Map{
		"status":  status,
		"version": Version,
		"services": fiber.Map{
			"redis": redisStatus,
		},
	}
	if stats := h.redis.GetStats(); stats != nil {
		body["pool_stats"] = fiber.Map{
			"hits":        stats.Hits,
			"misses":      stats.Misses,
			"timeouts":    stats.Timeouts,
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"stale_conns": stats.StaleConns,
		}
	}
	return c.Status(code).JSON(body)
}
