// Package config builds runtime configuration from the environment so
// main stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	// Addr serves the application API.
	Addr string
	// MetricsAddr serves Prometheus scrapes on a separate listener.
	MetricsAddr string
	// DatabaseURL selects the Postgres store when set.
	DatabaseURL string
	// Redis selects the Redis store when its URL is set and no
	// database is configured.
	Redis RedisConfig
	// KafkaBrokers enable audit event publishing when non-empty.
	KafkaBrokers []string
	// AuditTopic receives lifecycle audit events.
	AuditTopic string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// ShutdownTimeout bounds graceful drain on exit.
	ShutdownTimeout time.Duration
}

// RedisConfig captures connection pool settings for the Redis store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:            envOr("ASSURE_ADDR", ":8080"),
		MetricsAddr:     envOr("ASSURE_METRICS_ADDR", ":9090"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AuditTopic:      envOr("ASSURE_AUDIT_TOPIC", "assure.application.audit"),
		LogLevel:        envOr("ASSURE_LOG_LEVEL", "info"),
		ShutdownTimeout: 10 * time.Second,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
