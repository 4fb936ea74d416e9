package translationcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cms-autotranslate/internal/commands"
	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/interceptor"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

const ensureTranslationMessageType = "autotranslate.translation.ensure"

// EnsureTranslationCommand runs the interceptor's ensure routine outside an
// HTTP request. An empty Locale resolves to the site default.
type EnsureTranslationCommand struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	Locale   string `json:"locale,omitempty"`

	// Result receives the outcome when non-nil.
	Result *EnsureResult `json:"-"`
}

// EnsureResult reports what the ensure routine did.
type EnsureResult struct {
	Target  interceptor.Target
	Outcome interceptor.Outcome
}

// Type implements command.Message.
func (EnsureTranslationCommand) Type() string { return ensureTranslationMessageType }

// Validate ensures the message addresses a known resource kind and entity.
func (m EnsureTranslationCommand) Validate() error {
	errs := validation.Errors{}
	if _, ok := domain.ParseResourceKind(m.Kind); !ok {
		errs["kind"] = validation.NewError("autotranslate.translation.ensure.kind_invalid", "kind must be node or taxonomy_term")
	}
	if strings.TrimSpace(m.EntityID) == "" {
		errs["entity_id"] = validation.NewError("autotranslate.translation.ensure.entity_id_required", "entity_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Ensurer is satisfied by *interceptor.Interceptor.
type Ensurer interface {
	Ensure(ctx context.Context, target interceptor.Target) (interceptor.Outcome, error)
}

// EnsureTranslationHandler drives Ensurer through the shared command handler.
type EnsureTranslationHandler struct {
	inner *commands.Handler[EnsureTranslationCommand]
}

func NewEnsureTranslationHandler(ensurer Ensurer, locales i18n.DefaultLocaleProvider, logger interfaces.Logger, opts ...commands.HandlerOption[EnsureTranslationCommand]) *EnsureTranslationHandler {
	exec := func(ctx context.Context, msg EnsureTranslationCommand) error {
		kind, _ := domain.ParseResourceKind(msg.Kind)
		target := interceptor.Target{
			Kind:     kind,
			EntityID: strings.TrimSpace(msg.EntityID),
			Locale:   strings.TrimSpace(msg.Locale),
		}
		if target.Locale == "" && locales != nil {
			target.Locale = locales.DefaultLocale(ctx)
			target.Elided = true
		}
		if target.Locale == "" {
			return validation.Errors{
				"locale": validation.NewError("autotranslate.translation.ensure.locale_required", "locale is required when no default is configured"),
			}
		}

		outcome, err := ensurer.Ensure(ctx, target)
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = EnsureResult{Target: target, Outcome: outcome}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[EnsureTranslationCommand]{
		commands.WithLogger[EnsureTranslationCommand](logger),
		commands.WithOperation[EnsureTranslationCommand]("translation.ensure"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &EnsureTranslationHandler{
		inner: commands.NewHandler[EnsureTranslationCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[EnsureTranslationCommand].Execute.
func (h *EnsureTranslationHandler) Execute(ctx context.Context, msg EnsureTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}
