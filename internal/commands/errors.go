package commands

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by errors returned from Handler.Execute.
const (
	CodeInvalidMessage    = "AUTOTRANSLATE_INVALID_MESSAGE"
	CodeCanceled          = "AUTOTRANSLATE_CANCELED"
	CodeTimedOut          = "AUTOTRANSLATE_TIMED_OUT"
	CodeEntityNotFound    = "AUTOTRANSLATE_ENTITY_NOT_FOUND"
	CodeLocaleNotFound    = "AUTOTRANSLATE_LOCALE_NOT_FOUND"
	CodeUnsupportedKind   = "AUTOTRANSLATE_UNSUPPORTED_KIND"
	CodeTranslationExists = "AUTOTRANSLATE_TRANSLATION_EXISTS"
	CodeFailed            = "AUTOTRANSLATE_FAILED"
)

type failureClass struct {
	category goerrors.Category
	code     string
	message  string
}

type failureRule struct {
	targets []error
	class   failureClass
}

// Checked in order, first match wins.
var failureRules = []failureRule{
	{
		targets: []error{context.Canceled},
		class:   failureClass{goerrors.CategoryCommand, CodeCanceled, "cancelled"},
	},
	{
		targets: []error{context.DeadlineExceeded},
		class:   failureClass{goerrors.CategoryCommand, CodeTimedOut, "deadline exceeded"},
	},
	{
		targets: []error{translations.ErrEntityNotFound, content.ErrNodeNotFound, taxonomy.ErrTermNotFound},
		class:   failureClass{goerrors.CategoryNotFound, CodeEntityNotFound, "entity not found"},
	},
	{
		targets: []error{i18n.ErrLocaleNotFound, i18n.ErrNoDefaultLocale},
		class:   failureClass{goerrors.CategoryNotFound, CodeLocaleNotFound, "locale not found"},
	},
	{
		targets: []error{translations.ErrUnknownKind},
		class:   failureClass{goerrors.CategoryBadInput, CodeUnsupportedKind, "resource kind not supported"},
	},
	{
		targets: []error{translations.ErrTranslationExists, content.ErrTranslationExists, taxonomy.ErrTranslationExists},
		class:   failureClass{goerrors.CategoryConflict, CodeTranslationExists, "translation already exists"},
	},
}

var (
	invalidMessage = failureClass{goerrors.CategoryValidation, CodeInvalidMessage, "invalid message"}
	genericFailure = failureClass{goerrors.CategoryCommand, CodeFailed, "execution failed"}
)

func classifyFailure(err error) failureClass {
	for _, rule := range failureRules {
		for _, target := range rule.targets {
			if errors.Is(err, target) {
				return rule.class
			}
		}
	}
	if isValidationFailure(err) {
		return invalidMessage
	}
	return genericFailure
}

func isValidationFailure(err error) bool {
	var issues validation.Errors
	if errors.As(err, &issues) {
		return true
	}
	var issue validation.Error
	return errors.As(err, &issue)
}

// wrapFailure tags err with the operation and the class it falls into.
// Errors that are already categorised and match no rule pass through so
// storage categories survive.
func wrapFailure(err error, operation string) error {
	if err == nil {
		return nil
	}
	class := classifyFailure(err)
	if class == genericFailure && goerrors.IsWrapped(err) {
		return err
	}
	return tag(err, class, operation)
}

func wrapValidationFailure(err error, operation string) error {
	if err == nil {
		return nil
	}
	return tag(err, invalidMessage, operation)
}

func tag(err error, class failureClass, operation string) error {
	message := class.message
	if operation != "" {
		message = operation + ": " + message
	}
	wrapped := goerrors.Wrap(err, class.category, message).WithTextCode(class.code)
	// Wrap keeps the category of an existing go-errors value.
	wrapped.Category = class.category
	if operation != "" {
		wrapped = wrapped.WithMetadata(map[string]any{"operation": operation})
	}
	return wrapped
}
