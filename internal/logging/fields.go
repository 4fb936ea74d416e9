package logging

import (
	"strings"

	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

// WithFields pins fields on loggers implementing interfaces.FieldsLogger.
// Nil values and blank strings are dropped and strings are trimmed. Other
// loggers come back unchanged.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil {
		return nil
	}
	kept := compactFields(fields)
	if len(kept) == 0 {
		return logger
	}
	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(kept)
	}
	return logger
}

// WithTranslationContext tags the logger with the entity kind, entity id and
// locale of a translation.
func WithTranslationContext(logger interfaces.Logger, kind, entityID, locale string) interfaces.Logger {
	return WithFields(logger, map[string]any{
		interfaces.LogFieldEntity:   kind,
		interfaces.LogFieldEntityID: entityID,
		interfaces.LogFieldLocale:   locale,
	})
}

func compactFields(fields map[string]any) map[string]any {
	var kept map[string]any
	for key, value := range fields {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v = strings.TrimSpace(v); v == "" {
				continue
			}
			value = v
		}
		if kept == nil {
			kept = make(map[string]any, len(fields))
		}
		kept[key] = value
	}
	return kept
}
