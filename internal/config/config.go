// Package config provides centralized configuration for the directory
// server and CLI. Settings come from environment variables with defaults
// and are validated on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Assist   AssistConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`

	// BaseURL prefixes share links; empty uses the request host.
	BaseURL string `env:"PUBLIC_BASE_URL"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout bounds each request, assistant calls included (default: 45s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"45s"`
}

// DataConfig selects the resource table.
type DataConfig struct {
	// Path is a CSV file replacing the embedded catalog when set.
	Path string `env:"DATA_PATH"`

	// Seed fixes map jitter and initial trust scores; 0 draws from the clock.
	Seed uint64 `env:"DATA_SEED" default:"0"`

	// CuratorEmail receives requests for new resources; empty leaves the
	// recipient to the requester's mail client.
	CuratorEmail string `env:"CURATOR_EMAIL"`
}

// RateLimitConfig holds per-client rate limiting settings.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the sustained rate per client IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// Burst is how many requests a client may make at once (default: 20)
	Burst int `env:"RATE_LIMIT_BURST" default:"20"`

	// WriteRequestsPerMinute applies to reviews, saves and assistant calls (default: 20)
	WriteRequestsPerMinute int `env:"RATE_LIMIT_WRITES_PER_MINUTE" default:"20"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// RequireAPIKey guards mutating routes with X-API-Key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is a comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// AssistConfig holds Gemini settings. The assistant is disabled when
// APIKey is empty.
type AssistConfig struct {
	APIKey string `env:"GEMINI_API_KEY" envAlt:"API_KEY"`

	Model string `env:"ASSIST_MODEL" default:"gemini-2.5-flash"`

	// Timeout bounds one upstream call (default: 30s)
	Timeout time.Duration `env:"ASSIST_TIMEOUT" default:"30s"`

	// CacheTTL keeps identical answers; negative disables the cache (default: 10m)
	CacheTTL time.Duration `env:"ASSIST_CACHE_TTL" default:"10m"`

	// RequestsPerMinute caps upstream calls across all clients (default: 30)
	RequestsPerMinute int `env:"ASSIST_REQUESTS_PER_MINUTE" default:"30"`

	// MaxConcurrent caps upstream calls in flight (default: 4)
	MaxConcurrent int `env:"ASSIST_MAX_CONCURRENT" default:"4"`

	// Temperature is passed through when positive.
	Temperature float64 `env:"ASSIST_TEMPERATURE" default:"0"`
}

// Enabled reports whether an API key is configured.
func (c AssistConfig) Enabled() bool {
	return c.APIKey != ""
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
