package config

// Redis is optional. It backs the distributed rate limiter only; the service
// itself is stateless and every endpoint keeps working when Redis is absent.
// NewRedisClient therefore returns nil instead of an error when no server is
// reachable, and callers degrade to in-process limiting.

import (
	"context"
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from environment variables:
//
//	REDIS_HOST / REDIS_PORT – hostname and port of the Redis server
//	REDIS_ADDR              – host:port shorthand (takes precedence)
//	REDIS_PASSWORD          – optional password
//	REDIS_DB                – database number (default 0)
//	REDIS_TLS               – enable TLS when "true" or "1"
//
// When none of the address variables are set, or the server does not answer
// a short ping, the function returns nil.
func NewRedisClient() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	addr := os.Getenv("REDIS_ADDR")
	if host != "" && port != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		return nil
	}
	pwd := os.Getenv("REDIS_PASSWORD")
	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}
	var tlsConf *tls.Config
	if tlsEnv := os.Getenv("REDIS_TLS"); strings.EqualFold(tlsEnv, "true") || tlsEnv == "1" {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  pwd,
		DB:        dbNum,
		TLSConfig: tlsConf,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil
	}
	return client
}
