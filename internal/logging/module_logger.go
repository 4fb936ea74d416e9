package logging

import (
	"context"

	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

const (
	rootModule        = "autotranslate"
	interceptorModule = "autotranslate.interceptor"
	storageModule     = "autotranslate.storage"
	i18nModule        = "autotranslate.i18n"
	adminModule       = "autotranslate.admin"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// InterceptorLogger returns the logger namespace used by the request interceptor.
func InterceptorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, interceptorModule)
}

// StorageLogger returns the logger namespace used by database bootstrap.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// I18NLogger returns the logger namespace used by locale providers.
func I18NLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, i18nModule)
}

// AdminLogger returns the logger namespace used by the admin HTTP API.
func AdminLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, adminModule)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
