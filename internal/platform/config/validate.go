package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Agent.validate(),
		c.Storage.validate(),
		c.Model.validate(),
		c.Search.validate(),
		c.Sinks.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (a *AgentConfig) validate() error {
	var errs []error

	if a.MaxToolRounds < 1 {
		errs = append(errs, fmt.Errorf("agent.max_tool_rounds must be >= 1, got %d", a.MaxToolRounds))
	}
	if a.MaxUserTurns < 1 {
		errs = append(errs, fmt.Errorf("agent.max_user_turns must be >= 1, got %d", a.MaxUserTurns))
	}
	if a.MaxHistoryTokens < 0 {
		errs = append(errs, fmt.Errorf("agent.max_history_tokens must be >= 0, got %d", a.MaxHistoryTokens))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	if s.Dir == "" {
		return errors.New("storage.dir must not be empty")
	}
	return nil
}

func (m *ModelConfig) validate() error {
	var errs []error

	if m.Name == "" {
		errs = append(errs, errors.New("model.name must not be empty"))
	}
	errs = append(errs, m.Client.validate("model.client"))

	return errors.Join(errs...)
}

func (s *SearchConfig) validate() error {
	return s.Client.validate("search.client")
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (s *SinksConfig) validate() error {
	var errs []error

	if s.Memory.Capacity < 1 {
		errs = append(errs, fmt.Errorf("sinks.memory.capacity must be >= 1, got %d", s.Memory.Capacity))
	}
	if s.File.Enabled && s.File.Path == "" {
		errs = append(errs, errors.New("sinks.file.path must not be empty when the file sink is enabled"))
	}
	if s.SQLite.Enabled && s.SQLite.Path == "" {
		errs = append(errs, errors.New("sinks.sqlite.path must not be empty when the sqlite sink is enabled"))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
