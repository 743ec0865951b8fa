package rates

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/andriiko/pocketbank/internal/cache"
	"github.com/redis/go-redis/v9"
)

const redisKey = "rates:display"

// Fetcher is the feed client; split out so the service is testable without
// the network.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Rate, error)
}

// Metrics receives the fetch outcome; satisfied by observability.Prom.
type Metrics interface {
	ObserveRatesFetch(result string, seconds float64)
}

// Service serves the display rates out of Redis when configured, falling
// back to an in-process TTL cache, and hits the feed only on a miss.
type Service struct {
	fetcher Fetcher
	rdb     *redis.Client // nil when Redis is not configured
	local   *cache.Cache[[]Rate]
	ttl     time.Duration
	log     *slog.Logger
	metrics Metrics
}

func NewService(fetcher Fetcher, rdb *redis.Client, ttl time.Duration, log *slog.Logger, metrics Metrics) *Service {
	return &Service{
		fetcher: fetcher,
		rdb:     rdb,
		local:   cache.New[[]Rate](ttl),
		ttl:     ttl,
		log:     log,
		metrics: metrics,
	}
}

// Get returns the cached display set, refreshing from the feed on a miss.
func (s *Service) Get(ctx context.Context) ([]Rate, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, redisKey).Bytes()

		if err == nil {
			var cached []Rate

			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			// poisoned entry, fall through to a refresh
		} else if err != redis.Nil {
			s.log.Warn("redis get failed, falling back", "err", err)
		}
	} else if cached, ok := s.local.Get(redisKey); ok {
		return cached, nil
	}

	return s.Refresh(ctx)
}

// Refresh fetches the feed and repopulates whichever cache is in play.
func (s *Service) Refresh(ctx context.Context) ([]Rate, error) {
	start := time.Now()

	fetched, err := s.fetcher.Fetch(ctx)

	if s.metrics != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.metrics.ObserveRatesFetch(result, time.Since(start).Seconds())
	}

	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		raw, err := json.Marshal(fetched)

		if err == nil {
			if err := s.rdb.Set(ctx, redisKey, raw, s.ttl).Err(); err != nil {
				s.log.Warn("redis set failed", "err", err)
			}
		}
	} else {
		s.local.Set(redisKey, fetched)
	}

	return fetched, nil
}
