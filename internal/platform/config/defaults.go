package config

const (
	defaultServerPort = 8080

	defaultMaxToolRounds    = 8
	defaultMaxUserTurns     = 12
	defaultMaxHistoryTokens = 6000

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMemorySinkCapacity = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "120s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"agent.max_tool_rounds":    defaultMaxToolRounds,
		"agent.max_user_turns":     defaultMaxUserTurns,
		"agent.max_history_tokens": defaultMaxHistoryTokens,
		"agent.strict_spans":       false,

		"storage.dir": "data",

		"model.name":    "gpt-4.1-mini",
		"model.api_key": "",

		"model.client.base_url":                        "https://api.openai.com/v1",
		"model.client.timeout":                         "90s",
		"model.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"model.client.retry.initial_interval":          "100ms",
		"model.client.retry.max_interval":              "10s",
		"model.client.retry.multiplier":                defaultRetryMultiplier,
		"model.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"model.client.circuit_breaker.timeout":         "30s",
		"model.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"model.client.rate_limit.requests_per_second":  0,
		"model.client.rate_limit.burst_size":           1,

		"search.api_key": "",

		"search.client.base_url":                        "https://api.search.brave.com/res/v1",
		"search.client.timeout":                         "10s",
		"search.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"search.client.retry.initial_interval":          "100ms",
		"search.client.retry.max_interval":              "10s",
		"search.client.retry.multiplier":                defaultRetryMultiplier,
		"search.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"search.client.circuit_breaker.timeout":         "30s",
		"search.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"search.client.rate_limit.requests_per_second":  1,
		"search.client.rate_limit.burst_size":           1,

		"sinks.memory.capacity": defaultMemorySinkCapacity,
		"sinks.file.enabled":    false,
		"sinks.file.path":       "data/traces.jsonl",
		"sinks.sqlite.enabled":  false,
		"sinks.sqlite.path":     "data/traces.db",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-agent",
	}
}
