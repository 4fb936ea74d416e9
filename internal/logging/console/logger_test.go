package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/internal/logging/console"
)

func bufferedOptions(buf *bytes.Buffer, minLevel console.Level) console.Options {
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)
	return console.Options{
		Writer:   buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	}
}

func TestConsoleLogger_TranslationEntry(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(bufferedOptions(&buf, console.LevelDebug))

	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"method": "PATCH",
		"path":   "/pt-BR/taxonomy/term/7",
	})
	logger := logging.InterceptorLogger(provider).WithContext(ctx)
	logging.WithTranslationContext(logger, "taxonomy_term", "7", "pt-BR").Debug("translation.created")

	got := strings.TrimSpace(buf.String())
	want := "2024-03-14T15:09:26.535897Z DEBUG translation.created entity=taxonomy_term entity_id=7 locale=pt-BR" +
		" logger=autotranslate.interceptor method=PATCH module=autotranslate.interceptor path=/pt-BR/taxonomy/term/7"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_FailureEntryQuotesError(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(bufferedOptions(&buf, console.LevelDebug))

	logger := logging.WithTranslationContext(logging.InterceptorLogger(provider), "node", "42", "de")
	logger.Error("translation.ensure.failed", "error", errors.New("database is locked"))

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, `error="database is locked"`) {
		t.Fatalf("expected quoted error, got %s", line)
	}
	if !strings.Contains(line, "entity=node entity_id=42") || !strings.Contains(line, "locale=de") {
		t.Fatalf("expected translation fields, got %s", line)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(bufferedOptions(&buf, console.LevelInfo))

	logger := logging.WithTranslationContext(logging.InterceptorLogger(provider), "node", "42", "de")
	logger.Debug("translation.exists")
	logger.Info("translation.created")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "translation.created") {
		t.Fatalf("expected info entry to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_PositionalArgs(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	provider.GetLogger("autotranslate.storage").Info("storage.query", 7, "select", "dangling")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, "field_0=select") || !strings.Contains(line, "field_1=dangling") {
		t.Fatalf("expected positional fields, got %s", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		"DEBUG":   console.LevelDebug,
		"warning": console.LevelWarn,
		" error ": console.LevelError,
		"fatal":   console.LevelFatal,
	}
	for input, want := range cases {
		got, ok := console.ParseLevel(input)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if _, ok := console.ParseLevel("loud"); ok {
		t.Fatal("expected unknown level to be rejected")
	}
}
