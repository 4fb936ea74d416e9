package runtimeconfig

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrDefaultLocaleRequired = errors.New("autotranslate config: default locale is required")
var ErrInterceptorMethodsRequired = errors.New("autotranslate config: interceptor requires at least one method")
var ErrInterceptorFormatsRequired = errors.New("autotranslate config: interceptor requires at least one format")
var ErrStorageProviderUnknown = errors.New("autotranslate config: storage provider is invalid")
var ErrStorageDriverUnknown = errors.New("autotranslate config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("autotranslate config: storage dsn is required for the bun provider")
var ErrCacheRequiresBunStorage = errors.New("autotranslate config: cache is only supported with the bun storage provider")
var ErrLoggingProviderRequired = errors.New("autotranslate config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("autotranslate config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("autotranslate config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("autotranslate config: logging format is invalid")

// Config aggregates the settings of the translation interceptor and the
// adapters it is wired to.
type Config struct {
	DefaultLocale string            `env:"DEFAULT_LOCALE"`
	Interceptor   InterceptorConfig `envPrefix:"INTERCEPTOR_"`
	I18N          I18NConfig        `envPrefix:"I18N_"`
	Storage       StorageConfig     `envPrefix:"STORAGE_"`
	Cache         CacheConfig       `envPrefix:"CACHE_"`
	Logging       LoggingConfig     `envPrefix:"LOGGING_"`
	Features      Features          `envPrefix:"FEATURES_"`
}

// InterceptorConfig controls which requests trigger translation stubs.
type InterceptorConfig struct {
	Enabled     bool     `env:"ENABLED"`
	Methods     []string `env:"METHODS" envSeparator:","`
	Formats     []string `env:"FORMATS" envSeparator:","`
	FormatParam string   `env:"FORMAT_PARAM"`
}

// I18NConfig controls how the default language is resolved.
type I18NConfig struct {
	// LocaleTable resolves the default language from the locales table,
	// falling back to DefaultLocale when no row is flagged default.
	LocaleTable bool     `env:"LOCALE_TABLE"`
	Locales     []string `env:"LOCALES" envSeparator:","`
}

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Provider string `env:"PROVIDER"`
	Driver   string `env:"DRIVER"`
	DSN      string `env:"DSN"`
	Debug    bool   `env:"DEBUG"`
}

// CacheConfig captures entity lookup cache behaviour.
type CacheConfig struct {
	Enabled    bool          `env:"ENABLED"`
	DefaultTTL time.Duration `env:"TTL"`
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string   `env:"PROVIDER"`
	Level     string   `env:"LEVEL"`
	Format    string   `env:"FORMAT"`
	AddSource bool     `env:"ADD_SOURCE"`
	Focus     []string `env:"FOCUS" envSeparator:","`
}

// Features toggles optional integrations.
type Features struct {
	Logger bool `env:"LOGGER"`
}

// DefaultConfig returns the baseline: PATCH+json interception, in-memory
// storage, console logging.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		Interceptor: InterceptorConfig{
			Enabled:     true,
			Methods:     []string{http.MethodPatch},
			Formats:     []string{"json"},
			FormatParam: "_format",
		},
		I18N: I18NConfig{
			Locales: []string{"en"},
		},
		Storage: StorageConfig{
			Provider: "memory",
			Driver:   "sqlite",
		},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Logger: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if cfg.Interceptor.Enabled {
		if len(compact(cfg.Interceptor.Methods)) == 0 {
			return ErrInterceptorMethodsRequired
		}
		if len(compact(cfg.Interceptor.Formats)) == 0 {
			return ErrInterceptorFormatsRequired
		}
		if err := validation.ValidateStruct(&cfg.Interceptor,
			validation.Field(&cfg.Interceptor.Methods, validation.Each(validation.By(isHTTPMethod))),
		); err != nil {
			return err
		}
	}

	provider := normalize(cfg.Storage.Provider)
	switch provider {
	case "memory":
	case "bun":
		if !isSupportedDriver(normalize(cfg.Storage.Driver)) {
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Cache.Enabled && provider != "bun" {
		return ErrCacheRequiresBunStorage
	}

	if cfg.Features.Logger {
		logProvider := normalize(cfg.Logging.Provider)
		if logProvider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedLogProvider(logProvider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, logProvider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if logProvider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func isHTTPMethod(value any) error {
	method, _ := value.(string)
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return nil
	default:
		return validation.NewError("autotranslate.config.method_invalid", fmt.Sprintf("unsupported method %q", method))
	}
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "sqlite", "sqlite3", "postgres", "pgx":
		return true
	default:
		return false
	}
}

func isSupportedLogProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
