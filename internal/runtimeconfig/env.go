package runtimeconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by LoadFromEnv.
const EnvPrefix = "AUTOTRANSLATE_"

// LoadFromEnv overlays AUTOTRANSLATE_* environment variables on top of
// DefaultConfig and validates the result. Unset variables keep their
// defaults.
func LoadFromEnv() (Config, error) {
	return LoadFromEnvironment(nil)
}

// LoadFromEnvironment behaves like LoadFromEnv but reads from the supplied
// map when non-nil, which keeps tests independent of the process env.
func LoadFromEnvironment(environ map[string]string) (Config, error) {
	cfg := DefaultConfig()
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("autotranslate config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
