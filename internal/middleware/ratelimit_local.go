package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/textwise/text-analysis-service/internal/config"
	"github.com/textwise/text-analysis-service/internal/model"
)

// localBuckets keeps one token bucket per client IP in process memory. It is
// the fallback when no Redis server is configured. Idle buckets are swept
// after cfg.TTL so the map does not grow without bound.
type localBuckets struct {
	mu       sync.Mutex
	buckets  map[string]*localBucket
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	interval time.Duration
	lastGC   time.Time
}

type localBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLocalBucket(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	lb := &localBuckets{
		buckets:  make(map[string]*localBucket),
		limit:    rate.Every(cfg.RefillInterval / time.Duration(cfg.RefillTokens)),
		burst:    cfg.Capacity,
		ttl:      cfg.TTL,
		interval: cfg.RefillInterval,
		lastGC:   time.Now(),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			if lb.allow(ip) {
				return next(c)
			}
			secs := int(math.Ceil(lb.interval.Seconds()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
			return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{Error: "rate limit exceeded"})
		}
	}
}

func (l *localBuckets) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastGC) > l.ttl {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > l.ttl {
				delete(l.buckets, k)
			}
		}
		l.lastGC = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.lim.Allow()
}
