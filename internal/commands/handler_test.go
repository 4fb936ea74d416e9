package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
	goerrors "github.com/goliatone/go-errors"
)

type translateMessage struct {
	EntityID string
	Locale   string
}

func (translateMessage) Type() string { return "autotranslate.test.translate" }

func (m translateMessage) Validate() error {
	if strings.TrimSpace(m.Locale) == "" {
		return validation.Errors{"locale": validation.NewError("locale_required", "locale is required")}
	}
	return nil
}

func textCode(t *testing.T, err error) string {
	t.Helper()
	var coded *goerrors.Error
	if !errors.As(err, &coded) {
		t.Fatalf("expected go-errors value, got %T: %v", err, err)
	}
	return coded.TextCode
}

func TestHandlerExecutePassesMessage(t *testing.T) {
	var got translateMessage
	h := NewHandler[translateMessage](func(_ context.Context, msg translateMessage) error {
		got = msg
		return nil
	})

	msg := translateMessage{EntityID: "42", Locale: "de"}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got != msg {
		t.Fatalf("expected handler to receive %+v, got %+v", msg, got)
	}
}

func TestHandlerRejectsMessageWithoutLocale(t *testing.T) {
	called := false
	h := NewHandler[translateMessage](func(context.Context, translateMessage) error {
		called = true
		return nil
	}, WithOperation[translateMessage]("translation.ensure"))

	err := h.Execute(context.Background(), translateMessage{EntityID: "42"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if code := textCode(t, err); code != CodeInvalidMessage {
		t.Fatalf("expected %s, got %s", CodeInvalidMessage, code)
	}
	var coded *goerrors.Error
	errors.As(err, &coded)
	if coded.Metadata["operation"] != "translation.ensure" {
		t.Fatalf("expected operation metadata, got %v", coded.Metadata)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerCancelledBeforeExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[translateMessage](func(context.Context, translateMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, translateMessage{EntityID: "42", Locale: "de"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if code := textCode(t, err); code != CodeCanceled {
		t.Fatalf("expected %s, got %s", CodeCanceled, code)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerClassifiesTranslationFailures(t *testing.T) {
	storageErr := goerrors.New("connection refused", goerrors.CategoryExternal)

	cases := []struct {
		name     string
		err      error
		category goerrors.Category
		code     string
	}{
		{name: "entity missing", err: translations.ErrEntityNotFound, category: goerrors.CategoryNotFound, code: CodeEntityNotFound},
		{name: "node missing", err: &content.NotFoundError{Resource: "node", Key: "42"}, category: goerrors.CategoryNotFound, code: CodeEntityNotFound},
		{name: "term missing", err: taxonomy.ErrTermNotFound, category: goerrors.CategoryNotFound, code: CodeEntityNotFound},
		{name: "locale missing", err: i18n.ErrLocaleNotFound, category: goerrors.CategoryNotFound, code: CodeLocaleNotFound},
		{name: "unknown kind", err: translations.ErrUnknownKind, category: goerrors.CategoryBadInput, code: CodeUnsupportedKind},
		{name: "translation exists", err: content.ErrTranslationExists, category: goerrors.CategoryConflict, code: CodeTranslationExists},
		{name: "invalid input from handler", err: validation.Errors{"locale": errors.New("required")}, category: goerrors.CategoryValidation, code: CodeInvalidMessage},
		{name: "plain failure", err: errors.New("disk full"), category: goerrors.CategoryCommand, code: CodeFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler[translateMessage](func(context.Context, translateMessage) error {
				return tc.err
			}, WithOperation[translateMessage]("translation.ensure"))

			err := h.Execute(context.Background(), translateMessage{EntityID: "42", Locale: "de"})
			if !goerrors.IsCategory(err, tc.category) {
				t.Fatalf("expected %s category, got %v", tc.category, err)
			}
			if code := textCode(t, err); code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, code)
			}
			if !strings.Contains(err.Error(), "translation.ensure") {
				t.Fatalf("expected operation in message, got %q", err.Error())
			}
		})
	}

	t.Run("sentinel stays reachable", func(t *testing.T) {
		h := NewHandler[translateMessage](func(context.Context, translateMessage) error {
			return translations.ErrEntityNotFound
		})
		err := h.Execute(context.Background(), translateMessage{EntityID: "42", Locale: "de"})
		if !errors.Is(err, translations.ErrEntityNotFound) {
			t.Fatalf("expected errors.Is to reach the sentinel, got %v", err)
		}
	})

	t.Run("categorised storage error passes through", func(t *testing.T) {
		h := NewHandler[translateMessage](func(context.Context, translateMessage) error {
			return storageErr
		})
		err := h.Execute(context.Background(), translateMessage{EntityID: "42", Locale: "de"})
		if err != error(storageErr) {
			t.Fatalf("expected storage error unchanged, got %v", err)
		}
	})
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[translateMessage](func(ctx context.Context, _ translateMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[translateMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), translateMessage{EntityID: "42", Locale: "de"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
	if code := textCode(t, err); code != CodeTimedOut {
		t.Fatalf("expected %s, got %s", CodeTimedOut, code)
	}
}

func TestHandlerReportsTelemetry(t *testing.T) {
	var infos []TelemetryInfo
	record := WithTelemetry[translateMessage](func(_ context.Context, _ translateMessage, info TelemetryInfo) {
		infos = append(infos, info)
	})
	msg := translateMessage{EntityID: "42", Locale: "de"}

	ok := NewHandler[translateMessage](func(context.Context, translateMessage) error { return nil }, record, WithOperation[translateMessage]("translation.ensure"))
	if err := ok.Execute(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := NewHandler[translateMessage](func(context.Context, translateMessage) error { return translations.ErrEntityNotFound }, record)
	if err := missing.Execute(context.Background(), msg); err == nil {
		t.Fatal("expected error")
	}

	canceled := NewHandler[translateMessage](func(context.Context, translateMessage) error { return context.Canceled }, record)
	if err := canceled.Execute(context.Background(), msg); err == nil {
		t.Fatal("expected error")
	}

	if len(infos) != 3 {
		t.Fatalf("expected 3 telemetry calls, got %d", len(infos))
	}
	if infos[0].Status != TelemetryStatusSuccess || infos[0].Command != "autotranslate.test.translate" || infos[0].Operation != "translation.ensure" {
		t.Fatalf("unexpected success info %+v", infos[0])
	}
	if infos[1].Status != TelemetryStatusFailed || !errors.Is(infos[1].Error, translations.ErrEntityNotFound) {
		t.Fatalf("unexpected failure info %+v", infos[1])
	}
	if infos[2].Status != TelemetryStatusContextError {
		t.Fatalf("unexpected context info %+v", infos[2])
	}
}
