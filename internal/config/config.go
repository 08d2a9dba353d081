package config // package config loads application configuration from environment variables

import "time"

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable and every variable has a sensible default, so the
// service starts with no configuration at all. Serverless platforms inject
// PORT; everything else is optional tuning.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	LogLevel        string        // zap log level ("debug", "info", "warn", "error")
	MaxBodySize     string        // request body limit in Echo notation (e.g. "1M")
	ShutdownTimeout time.Duration // how long to drain in-flight requests on SIGTERM
}

// Load reads configuration values from environment variables and returns a
// Config. Unset variables fall back to their defaults.
func Load() Config {
	return Config{
		Env:             envStr("APP_ENV", "prod"),
		Port:            envStr("PORT", "8080"),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		MaxBodySize:     envStr("MAX_BODY_SIZE", "1M"),
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// MetricsConfig controls the Prometheus exposition endpoint. When Enabled is
// false no /metrics route is registered and no middleware runs.
type MetricsConfig struct {
	Enabled   bool
	Path      string
	Namespace string
}

func LoadMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   envBool("METRICS_ENABLED", true),
		Path:      envStr("METRICS_PATH", "/metrics"),
		Namespace: envStr("METRICS_NAMESPACE", "textanalysis"),
	}
}
