package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/metrics"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var _ ProfileSource = (*CachedSource)(nil)

// CachedSource keeps provider profiles in redis for ttl. Failed lookups are not cached.
type CachedSource struct {
	next           ProfileSource
	redisClient    *redis.Client
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewCachedSource(
	next ProfileSource,
	redisClient *redis.Client,
	ttl time.Duration,
	metricsManager *metrics.Manager,
) *CachedSource {
	return &CachedSource{
		next:           next,
		redisClient:    redisClient,
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func profileKey(userID string) string {
	return fmt.Sprintf("profile::%s", userID)
}

func (c *CachedSource) Profile(ctx context.Context, userID string) (*Profile, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.cache.profile")
	defer span.End()

	key := profileKey(userID)
	cached, err := c.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		profile := &Profile{}
		if err := json.Unmarshal(cached, profile); err == nil {
			span.SetAttributes(attribute.Bool("profile.from-cache", true))
			c.metricsManager.CounterProfileCache.WithLabelValues("hit").Inc()
			return profile, nil
		}
		log.Errorf("unmarshal cached profile [%s]: %s", key, err)
	case errors.Is(err, redis.Nil):
		log.Tracef("profile [%s] not cached", key)
	default:
		log.Errorf("get cached profile [%s]: %s", key, err)
	}

	span.SetAttributes(attribute.Bool("profile.from-cache", false))
	c.metricsManager.CounterProfileCache.WithLabelValues("miss").Inc()

	profile, err := c.next.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		return profile, nil
	}
	if err := c.redisClient.Set(ctx, key, profileJson, c.ttl).Err(); err != nil {
		log.Errorf("cache profile [%s]: %s", key, err)
	}
	return profile, nil
}

// Evict drops the cached profile of userID.
func (c *CachedSource) Evict(ctx context.Context, userID string) error {
	if err := c.redisClient.Del(ctx, profileKey(userID)).Err(); err != nil {
		return fmt.Errorf("evict profile: %w", err)
	}
	return nil
}
