package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the Config for profile. Later layers win:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_* environment variables
//
// Env var names are matched against the keys already loaded, so underscores
// inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT        -> server.read_timeout
//	APP_STORE_SQLITE_PATH          -> store.sqlite.path
//	APP_STORE_S3_PATH_STYLE        -> store.s3.path_style
//	APP_CLIENT_RETRY_MAX_ATTEMPTS  -> client.retry.max_attempts
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k, err := newWithDefaults()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	return finish(k)
}

// LoadDefaults builds a Config from the built-in defaults and APP_ env vars
// only. rosterctl uses it when no profile is selected.
func LoadDefaults() (*Config, error) {
	k, err := newWithDefaults()
	if err != nil {
		return nil, err
	}
	return finish(k)
}

func newWithDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return k, nil
}

// finish applies the env layer, then unmarshals and validates.
func finish(k *koanf.Koanf) (*Config, error) {
	provider := env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envKeyMapper returns a koanf env transform that resolves APP_A_B_C to the
// known key whose dots-as-underscores form is a_b_c. Unknown names fall back
// to replacing every underscore with a dot.
func envKeyMapper(known []string) func(string, string) (string, any) {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := lookup[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// validateProfile rejects empty profiles and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	default:
		return nil
	}
}
