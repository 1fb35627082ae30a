package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pixell-roster/internal/platform/config"
)

// repoConfigs is the configs/ directory at the repository root.
var repoConfigs = config.WithConfigDir(filepath.Join("..", "..", "..", "configs"))

func TestLoad_Profiles(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.Equal(t, "file", cfg.Store.Driver)
				assert.Equal(t, ".data", cfg.Store.File.Dir)
				assert.False(t, cfg.Telemetry.Enabled)
			},
		},
		{
			profile: "dev",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "sqlite", cfg.Store.Driver)
				assert.Equal(t, "/var/lib/pixell-roster/roster.db", cfg.Store.SQLite.Path)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "stdout", cfg.Telemetry.Exporter)
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "postgres", cfg.Store.Driver)
				assert.Contains(t, cfg.Store.Postgres.DSN, "sslmode=require")
				assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
				assert.NotEmpty(t, cfg.Telemetry.Endpoint)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			cfg, err := config.Load(tt.profile, repoConfigs)
			require.NoError(t, err)

			// Inherited from base.yaml in every profile.
			assert.Equal(t, "0.0.0.0", cfg.Server.Host)
			assert.Equal(t, 8080, cfg.Server.Port)
			assert.Equal(t, "pixell_db_v1", cfg.Store.Key)
			assert.Equal(t, "roster/", cfg.Store.S3.Prefix)
			assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
			assert.Equal(t, 5, cfg.Client.CircuitBreaker.MaxFailures)

			tt.check(t, cfg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"APP_SERVER_PORT", "9090", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 9090, cfg.Server.Port)
		}},
		{"APP_SERVER_READ_TIMEOUT", "15s", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		}},
		{"APP_CLIENT_RETRY_MAX_ATTEMPTS", "7", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 7, cfg.Client.Retry.MaxAttempts)
		}},
		{"APP_STORE_S3_PATH_STYLE", "true", func(t *testing.T, cfg *config.Config) {
			assert.True(t, cfg.Store.S3.PathStyle, "key only present in defaults")
		}},
		{"APP_STORE_SQLITE_PATH", "/tmp/roster-test.db", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, "/tmp/roster-test.db", cfg.Store.SQLite.Path)
		}},
		{"APP_CLIENT_CIRCUIT_BREAKER_HALF_OPEN_LIMIT", "4", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 4, cfg.Client.CircuitBreaker.HalfOpenLimit)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local", repoConfigs)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "store:\n  driver: memory\n")
	writeFile(t, filepath.Join(dir, "ci.yaml"), "server:\n  port: 18080\nlog:\n  format: text\n")

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "built-in default")
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		wantErr string
	}{
		{name: "missing profile file", profile: "staging", wantErr: "loading staging config"},
		{name: "empty profile", profile: " ", wantErr: "profile must not be empty"},
		{name: "path separator", profile: "prod/../local", wantErr: "path separators"},
		{name: "traversal", profile: "..", wantErr: "path traversal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.profile, repoConfigs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidValueFromEnv(t *testing.T) {
	t.Setenv("APP_STORE_DRIVER", "redis")

	_, err := config.Load("local", repoConfigs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `store.driver must be one of`)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_CLIENT_BASE_URL", "http://roster.internal:9000")

	cfg, err := config.LoadDefaults()
	require.NoError(t, err)

	assert.Equal(t, "http://roster.internal:9000", cfg.Client.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 5, cfg.Client.RateLimit.Burst)
	assert.Equal(t, "pixell_db_v1", cfg.Store.Key)
	assert.Equal(t, "file", cfg.Store.Driver)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too high", mutate: func(c *config.Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "no read timeout", mutate: func(c *config.Config) { c.Server.ReadTimeout = 0 }, wantErr: "server.read_timeout"},
		{name: "unknown log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: `log.level must be one of [debug info warn error], got "verbose"`},
		{name: "unknown log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "memory store", mutate: func(c *config.Config) { c.Store.Driver = "memory" }},
		{name: "unknown driver", mutate: func(c *config.Config) { c.Store.Driver = "redis" }, wantErr: "store.driver"},
		{name: "empty key", mutate: func(c *config.Config) { c.Store.Key = "" }, wantErr: "store.key"},
		{name: "file without dir", mutate: func(c *config.Config) { c.Store.File.Dir = "" }, wantErr: "store.file.dir"},
		{
			name: "sqlite without path",
			mutate: func(c *config.Config) {
				c.Store.Driver = "sqlite"
			},
			wantErr: "store.sqlite.path",
		},
		{name: "postgres without dsn", mutate: func(c *config.Config) { c.Store.Driver = "postgres" }, wantErr: "store.postgres.dsn"},
		{
			name: "s3 with bucket",
			mutate: func(c *config.Config) {
				c.Store.Driver = "s3"
				c.Store.S3.Bucket = "roster"
			},
		},
		{
			name: "s3 with half a key pair",
			mutate: func(c *config.Config) {
				c.Store.Driver = "s3"
				c.Store.S3.Bucket = "roster"
				c.Store.S3.AccessKeyID = "AKIA"
			},
			wantErr: "must be set together",
		},
		{name: "zero attempts", mutate: func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }, wantErr: "client.retry.max_attempts"},
		{name: "negative rate", mutate: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }, wantErr: "requests_per_second"},
		{name: "limit without burst", mutate: func(c *config.Config) { c.Client.RateLimit.Burst = 0 }, wantErr: "client.rate_limit.burst"},
		{
			name: "no limit, no burst",
			mutate: func(c *config.Config) {
				c.Client.RateLimit = config.RateLimitConfig{}
			},
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantErr: "telemetry.endpoint",
		},
		{
			name: "disabled telemetry is not checked",
			mutate: func(c *config.Config) {
				c.Telemetry.Exporter = "zipkin"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = -1
	cfg.Store.Key = ""
	cfg.Client.BaseURL = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"server.port", "store.key", "client.base_url"} {
		assert.Contains(t, err.Error(), key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Store: config.StoreConfig{
			Driver: "file",
			Key:    "pixell_db_v1",
			File:   config.FileConfig{Dir: "data"},
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			RateLimit:      config.RateLimitConfig{RequestsPerSecond: 20, Burst: 5},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
	}
}
