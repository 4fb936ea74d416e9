package autotranslate

import "github.com/goliatone/go-cms-autotranslate/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired      = runtimeconfig.ErrDefaultLocaleRequired
	ErrInterceptorMethodsRequired = runtimeconfig.ErrInterceptorMethodsRequired
	ErrInterceptorFormatsRequired = runtimeconfig.ErrInterceptorFormatsRequired
	ErrStorageProviderUnknown     = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDriverUnknown       = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired         = runtimeconfig.ErrStorageDSNRequired
	ErrCacheRequiresBunStorage    = runtimeconfig.ErrCacheRequiresBunStorage
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config            = runtimeconfig.Config
	InterceptorConfig = runtimeconfig.InterceptorConfig
	I18NConfig        = runtimeconfig.I18NConfig
	StorageConfig     = runtimeconfig.StorageConfig
	CacheConfig       = runtimeconfig.CacheConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
	Features          = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfigFromEnv overlays AUTOTRANSLATE_* variables on DefaultConfig.
func LoadConfigFromEnv() (Config, error) {
	return runtimeconfig.LoadFromEnv()
}
