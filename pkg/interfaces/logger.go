package interfaces

import "context"

// Logger receives interceptor and storage events. go-logger loggers fit
// through internal/logging/gologger, since their WithContext returns
// glog.Logger.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name, such as
// "autotranslate.interceptor".
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can pin structured fields,
// used to tag entries with the translation being ensured.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

// Field keys identifying the translation a log entry is about.
const (
	LogFieldEntity   = "entity"
	LogFieldEntityID = "entity_id"
	LogFieldLocale   = "locale"
)
