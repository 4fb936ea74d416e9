package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-cms-autotranslate/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := runtimeconfig.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "empty default locale",
			mutate: func(c *runtimeconfig.Config) { c.DefaultLocale = " " },
			want:   runtimeconfig.ErrDefaultLocaleRequired,
		},
		{
			name:   "no methods",
			mutate: func(c *runtimeconfig.Config) { c.Interceptor.Methods = []string{""} },
			want:   runtimeconfig.ErrInterceptorMethodsRequired,
		},
		{
			name:   "no formats",
			mutate: func(c *runtimeconfig.Config) { c.Interceptor.Formats = nil },
			want:   runtimeconfig.ErrInterceptorFormatsRequired,
		},
		{
			name:   "unknown storage provider",
			mutate: func(c *runtimeconfig.Config) { c.Storage.Provider = "redis" },
			want:   runtimeconfig.ErrStorageProviderUnknown,
		},
		{
			name: "bun without dsn",
			mutate: func(c *runtimeconfig.Config) {
				c.Storage.Provider = "bun"
				c.Storage.DSN = ""
			},
			want: runtimeconfig.ErrStorageDSNRequired,
		},
		{
			name: "bun with unknown driver",
			mutate: func(c *runtimeconfig.Config) {
				c.Storage.Provider = "bun"
				c.Storage.Driver = "oracle"
				c.Storage.DSN = "x"
			},
			want: runtimeconfig.ErrStorageDriverUnknown,
		},
		{
			name:   "cache on memory storage",
			mutate: func(c *runtimeconfig.Config) { c.Cache.Enabled = true },
			want:   runtimeconfig.ErrCacheRequiresBunStorage,
		},
		{
			name:   "missing logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "" },
			want:   runtimeconfig.ErrLoggingProviderRequired,
		},
		{
			name:   "unknown logging provider",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "invalid level",
			mutate: func(c *runtimeconfig.Config) { c.Logging.Level = "loud" },
			want:   runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(c *runtimeconfig.Config) {
				c.Logging.Provider = "gologger"
				c.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_RejectsUnknownMethod(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Interceptor.Methods = []string{"PATCH", "BREW"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown method to fail validation")
	}
}

func TestConfigValidate_DisabledInterceptorSkipsMatcherChecks(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Interceptor.Enabled = false
	cfg.Interceptor.Methods = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	cfg, err := runtimeconfig.LoadFromEnvironment(map[string]string{
		"AUTOTRANSLATE_DEFAULT_LOCALE":      "de",
		"AUTOTRANSLATE_INTERCEPTOR_METHODS": "PATCH,PUT",
		"AUTOTRANSLATE_INTERCEPTOR_FORMATS": "json,hal_json",
		"AUTOTRANSLATE_STORAGE_PROVIDER":    "bun",
		"AUTOTRANSLATE_STORAGE_DSN":         "file::memory:?cache=shared",
		"AUTOTRANSLATE_CACHE_ENABLED":       "true",
		"AUTOTRANSLATE_CACHE_TTL":           "30s",
		"AUTOTRANSLATE_LOGGING_LEVEL":       "debug",
		"AUTOTRANSLATE_I18N_LOCALE_TABLE":   "true",
	})
	if err != nil {
		t.Fatalf("LoadFromEnvironment: %v", err)
	}
	if cfg.DefaultLocale != "de" {
		t.Fatalf("expected default locale de, got %q", cfg.DefaultLocale)
	}
	if len(cfg.Interceptor.Methods) != 2 || cfg.Interceptor.Methods[1] != "PUT" {
		t.Fatalf("unexpected methods %v", cfg.Interceptor.Methods)
	}
	if len(cfg.Interceptor.Formats) != 2 || cfg.Interceptor.Formats[1] != "hal_json" {
		t.Fatalf("unexpected formats %v", cfg.Interceptor.Formats)
	}
	if !cfg.Cache.Enabled || cfg.Cache.DefaultTTL != 30*time.Second {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if !cfg.I18N.LocaleTable {
		t.Fatal("expected locale table lookup enabled")
	}
}

func TestLoadFromEnvironment_KeepsDefaults(t *testing.T) {
	cfg, err := runtimeconfig.LoadFromEnvironment(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFromEnvironment: %v", err)
	}
	defaults := runtimeconfig.DefaultConfig()
	if cfg.DefaultLocale != defaults.DefaultLocale || cfg.Storage.Provider != defaults.Storage.Provider {
		t.Fatalf("expected defaults preserved, got %+v", cfg)
	}
	if len(cfg.Interceptor.Methods) != 1 || cfg.Interceptor.Methods[0] != "PATCH" {
		t.Fatalf("expected default PATCH method, got %v", cfg.Interceptor.Methods)
	}
}

func TestLoadFromEnvironment_PropagatesValidation(t *testing.T) {
	_, err := runtimeconfig.LoadFromEnvironment(map[string]string{
		"AUTOTRANSLATE_STORAGE_PROVIDER": "bun",
	})
	if !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}
