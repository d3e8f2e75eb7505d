package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/arquinori/portfolio-backend/internal/config"
	"github.com/arquinori/portfolio-backend/internal/handlers"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
)

// RateLimiter counts requests per key. Backed by Redis fixed windows when
// REDIS_ADDR is set (so the limit holds across instances), per-key token
// buckets otherwise.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLocalLimiter(window time.Duration, max int) *localLimiter {
	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}
}

func (ll *localLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ll.mu.Lock()
	limiter, ok := ll.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(ll.limit, ll.burst)
		ll.limiters[key] = limiter
	}
	ll.mu.Unlock()
	return limiter.Allow(), nil
}

type redisLimiter struct {
	rdb    *goredis.Client
	window time.Duration
	max    int
}

func (rl *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.rdb.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.max), nil
}

// NewRateLimiter builds the backend once; callers share the Redis client.
func NewRateLimiter(cfg *config.Config, log *logger.Logger, window time.Duration, max int) RateLimiter {
	if cfg.RedisAddr == "" {
		return newLocalLimiter(window, max)
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.RedisAddr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, falling back to in-memory rate limiting", "error", err)
		_ = rdb.Close()
		return newLocalLimiter(window, max)
	}
	return &redisLimiter{rdb: rdb, window: window, max: max}
}

// RateLimit enforces the given limiter per client IP. A limiter backend
// failure fails open; throttling is protection, not a gate.
func RateLimit(limiter RateLimiter, log *logger.Logger, keyPrefix string) gin.HandlerFunc {
	middlewareLog := log.With("middleware", "RateLimit", "scope", keyPrefix)
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", keyPrefix, c.ClientIP())
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			middlewareLog.Warn("Rate limiter backend failure, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			handlers.AbortError(c, apierr.RateLimited("too many requests, please try again later"))
			return
		}
		c.Next()
	}
}
