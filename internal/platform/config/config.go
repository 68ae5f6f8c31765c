// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Agent     AgentConfig     `koanf:"agent"`
	Storage   StorageConfig   `koanf:"storage"`
	Model     ModelConfig     `koanf:"model"`
	Search    SearchConfig    `koanf:"search"`
	Sinks     SinksConfig     `koanf:"sinks"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings. WriteTimeout bounds the
// short-lived routes through the router's timeout middleware rather than
// the connection; the connection write deadline stays off so the span
// stream can hold its response open.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// AgentConfig holds conversational loop budgets. MaxToolRounds caps model
// decisions per utterance; MaxUserTurns and MaxHistoryTokens bound the
// persisted history. StrictSpans makes span lifecycle misuse panic instead
// of being logged, for development profiles.
type AgentConfig struct {
	MaxToolRounds    int  `koanf:"max_tool_rounds"`
	MaxUserTurns     int  `koanf:"max_user_turns"`
	MaxHistoryTokens int  `koanf:"max_history_tokens"`
	StrictSpans      bool `koanf:"strict_spans"`
}

// StorageConfig holds document store settings. Dir is where the todo and
// session JSON documents live.
type StorageConfig struct {
	Dir string `koanf:"dir"`
}

// ModelConfig holds chat model settings. APIKey is normally supplied via
// the APP_MODEL_API_KEY environment variable.
type ModelConfig struct {
	Name   string       `koanf:"name"`
	APIKey string       `koanf:"api_key"`
	Client ClientConfig `koanf:"client"`
}

// SearchConfig holds web search provider settings. APIKey is normally
// supplied via the APP_SEARCH_API_KEY environment variable.
type SearchConfig struct {
	APIKey string       `koanf:"api_key"`
	Client ClientConfig `koanf:"client"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound request rate limiting settings.
// RequestsPerSecond <= 0 disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// SinksConfig holds trace sink settings. The in-memory sink is always on
// (it backs the traces API); the file and sqlite sinks are opt-in.
type SinksConfig struct {
	Memory MemorySinkConfig `koanf:"memory"`
	File   FileSinkConfig   `koanf:"file"`
	SQLite SQLiteSinkConfig `koanf:"sqlite"`
}

// MemorySinkConfig holds in-memory trace ring settings.
type MemorySinkConfig struct {
	Capacity int `koanf:"capacity"`
}

// FileSinkConfig holds JSON-lines span log settings.
type FileSinkConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// SQLiteSinkConfig holds SQLite span archive settings.
type SQLiteSinkConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// TelemetryConfig holds OpenTelemetry settings. When enabled, spans are
// exported through the OTel sink and metrics through the meter provider.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
