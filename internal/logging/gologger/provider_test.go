package gologger

import (
	"context"
	"maps"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestProviderHandsOutModuleLoggers(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console", Focus: []string{" ", "autotranslate.interceptor"}})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := logging.InterceptorLogger(p)
	if _, ok := logger.(*adapter); !ok {
		t.Fatalf("expected go-logger adapter, got %T", logger)
	}
	logging.WithTranslationContext(logger, "node", "42", "de").Debug("translation.created")

	var nilProvider *Provider
	nilProvider.GetLogger("autotranslate.i18n").Info("dropped")
}

func TestAdapterCarriesTranslationFields(t *testing.T) {
	root := &stubLogger{}
	var logger interfaces.Logger = &adapter{inner: root}

	logger = logging.WithTranslationContext(logger, "taxonomy_term", "7", "pt-BR")
	logger.Info("translation.created", "outcome", "created")

	entry := root.last(t)
	if entry.level != "info" || entry.msg != "translation.created" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	want := map[string]any{
		interfaces.LogFieldEntity:   "taxonomy_term",
		interfaces.LogFieldEntityID: "7",
		interfaces.LogFieldLocale:   "pt-BR",
	}
	if !maps.Equal(entry.fields, want) {
		t.Fatalf("expected fields %v, got %v", want, entry.fields)
	}
}

func TestAdapterBindsRequestFieldsFromContext(t *testing.T) {
	root := &stubLogger{}
	base := &adapter{inner: root}

	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"method": "PATCH",
		"path":   "/de/node/42",
	})
	logger := logging.WithTranslationContext(base.WithContext(ctx), "node", "42", "de")
	logger.Debug("translation.exists")

	entry := root.last(t)
	if entry.ctx != ctx {
		t.Fatal("expected context to reach go-logger")
	}
	for key, value := range map[string]any{
		"method":                    "PATCH",
		"path":                      "/de/node/42",
		interfaces.LogFieldEntity:   "node",
		interfaces.LogFieldEntityID: "42",
		interfaces.LogFieldLocale:   "de",
	} {
		if entry.fields[key] != value {
			t.Fatalf("expected %s=%v, got %v", key, value, entry.fields)
		}
	}

	base.Warn("translation.skipped")
	if plain := root.last(t); len(plain.fields) != 0 || plain.ctx != nil {
		t.Fatalf("expected parent logger untouched, got %+v", plain)
	}
}

type stubEntry struct {
	level  string
	msg    string
	fields map[string]any
	ctx    context.Context
}

// stubLogger records entries into a log shared by all of its children.
type stubLogger struct {
	entries *[]stubEntry
	fields  map[string]any
	ctx     context.Context
}

var (
	_ glog.Logger       = (*stubLogger)(nil)
	_ glog.FieldsLogger = (*stubLogger)(nil)
)

func (s *stubLogger) record(level, msg string) {
	if s.entries == nil {
		s.entries = &[]stubEntry{}
	}
	*s.entries = append(*s.entries, stubEntry{level: level, msg: msg, fields: maps.Clone(s.fields), ctx: s.ctx})
}

func (s *stubLogger) last(t *testing.T) stubEntry {
	t.Helper()
	if s.entries == nil || len(*s.entries) == 0 {
		t.Fatal("expected a log entry")
	}
	return (*s.entries)[len(*s.entries)-1]
}

func (s *stubLogger) child() *stubLogger {
	if s.entries == nil {
		s.entries = &[]stubEntry{}
	}
	return &stubLogger{entries: s.entries, fields: maps.Clone(s.fields), ctx: s.ctx}
}

func (s *stubLogger) Trace(msg string, _ ...any) { s.record("trace", msg) }
func (s *stubLogger) Debug(msg string, _ ...any) { s.record("debug", msg) }
func (s *stubLogger) Info(msg string, _ ...any)  { s.record("info", msg) }
func (s *stubLogger) Warn(msg string, _ ...any)  { s.record("warn", msg) }
func (s *stubLogger) Error(msg string, _ ...any) { s.record("error", msg) }
func (s *stubLogger) Fatal(msg string, _ ...any) { s.record("fatal", msg) }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	out := s.child()
	out.ctx = ctx
	return out
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	out := s.child()
	if out.fields == nil {
		out.fields = map[string]any{}
	}
	maps.Copy(out.fields, fields)
	return out
}
