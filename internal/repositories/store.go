// Package repositories provides the session-scoped persistence layer.
// Sessions and their prices live in Redis and expire with the session.
package repositories

import (
	"context"
	"time"

	"fbaprofit/internal/config"
	"fbaprofit/internal/logger"
	"fbaprofit/internal/repositories/cache"
)

// DefaultSessionTTL bounds how long an idle session is kept.
const DefaultSessionTTL = 12 * time.Hour

// InitStore connects to Redis using the REDIS_* and SESSION_TTL settings and
// verifies the connection.
func InitStore(ctx context.Context) (*cache.CacheService, error) {
	redisCfg := cache.NewRedisConfig()
	ttl := config.GetDurationEnv("SESSION_TTL", DefaultSessionTTL)

	log := logger.Get().WithComponent("store")
	log.WithField("addr", redisCfg.Addr()).WithField("db", redisCfg.DB).Info("connecting to redis")

	svc := cache.NewCacheService(cache.NewRedisClient(redisCfg), ttl)
	if err := svc.HealthCheck(ctx); err != nil {
		_ = svc.Close()
		return nil, err
	}
	log.WithField("session_ttl", ttl.String()).Info("redis connected")
	return svc, nil
}
