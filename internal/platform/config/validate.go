package config

import (
	"errors"
	"fmt"
	"slices"
)

// problems collects every invalid setting so one run reports them all.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed ...string) {
	p.check(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Store.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (st *StoreConfig) validate(p *problems) {
	p.check(st.Key != "", "store.key must not be empty")
	p.oneOf("store.driver", st.Driver, "memory", "file", "sqlite", "postgres", "s3")

	switch st.Driver {
	case "file":
		p.check(st.File.Dir != "", "store.file.dir is required for the file driver")
	case "sqlite":
		p.check(st.SQLite.Path != "", "store.sqlite.path is required for the sqlite driver")
	case "postgres":
		p.check(st.Postgres.DSN != "", "store.postgres.dsn is required for the postgres driver")
	case "s3":
		p.check(st.S3.Bucket != "", "store.s3.bucket is required for the s3 driver")
		p.check((st.S3.AccessKeyID == "") == (st.S3.SecretAccessKey == ""),
			"store.s3.access_key_id and store.s3.secret_access_key must be set together")
	}
}

func (cl *ClientConfig) validate(p *problems) {
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive, got %s", cl.Timeout)

	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)

	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.Burst >= 1,
		"client.rate_limit.burst must be >= 1 when limiting, got %d", rl.Burst)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
}
