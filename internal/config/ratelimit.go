package config

import "time"

// RateLimitConfig describes the token bucket applied to incoming requests.
// Buckets are keyed by client IP. When a Redis client is available the
// buckets live in Redis so the limit holds across instances; otherwise an
// in-process limiter is used. Disabled by default: the analysis endpoint is
// cheap and the hosting platform already caps instance concurrency.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int           // bucket size (burst)
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill cadence
	TTL            time.Duration // Redis key lifetime for idle buckets
	Prefix         string        // Redis key namespace
	Debug          bool
}

func LoadRateLimitConfig() RateLimitConfig {
	def := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", false),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "rl"),
		Debug:          envBool("RATE_LIMIT_DEBUG", false),
	}
	if def.Capacity < 1 {
		def.Capacity = 1
	}
	if def.RefillTokens < 1 {
		def.RefillTokens = 1
	}
	if def.RefillInterval <= 0 {
		def.RefillInterval = time.Second
	}
	// Idle buckets must outlive a few refill cycles or the limiter resets
	// itself under slow traffic.
	if minTTL := 5 * def.RefillInterval; def.TTL < minTTL {
		def.TTL = minTTL
	}
	return def
}
