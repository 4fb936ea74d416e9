package interceptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

var (
	ErrLocaleProviderRequired = errors.New("interceptor: default locale provider required")
	ErrRegistryRequired       = errors.New("interceptor: strategy registry required")
)

// Outcome reports what Intercept or Ensure did.
type Outcome string

const (
	// OutcomeIgnored: method, format or path did not match.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeUnsupported: no strategy registered for the kind.
	OutcomeUnsupported Outcome = "unsupported"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeExists      Outcome = "exists"
	OutcomeCreated     Outcome = "created"
)

// Interceptor ensures a translation exists for the entity addressed by an
// update request before the request reaches the router.
type Interceptor struct {
	locales      i18n.DefaultLocaleProvider
	registry     *translations.Registry
	logger       interfaces.Logger
	methods      map[string]struct{}
	formats      map[string]struct{}
	formatParam  string
	errorHandler ErrorHandler
}

// Option mutates the interceptor configuration.
type Option func(*Interceptor)

// WithLogger overrides the logger. Only debug and error entries are written.
func WithLogger(logger interfaces.Logger) Option {
	return func(i *Interceptor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithMethods replaces the matched HTTP methods (default PATCH).
func WithMethods(methods ...string) Option {
	return func(i *Interceptor) {
		if set := toSet(methods, strings.ToUpper); len(set) > 0 {
			i.methods = set
		}
	}
}

// WithFormats replaces the matched request formats (default json).
func WithFormats(formats ...string) Option {
	return func(i *Interceptor) {
		if set := toSet(formats, strings.ToLower); len(set) > 0 {
			i.formats = set
		}
	}
}

// WithFormatParam sets the query parameter used for format negotiation.
func WithFormatParam(param string) Option {
	return func(i *Interceptor) {
		i.formatParam = strings.TrimSpace(param)
	}
}

// WithErrorHandler installs the handler used by Middleware on failure.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(i *Interceptor) {
		if handler != nil {
			i.errorHandler = handler
		}
	}
}

func New(locales i18n.DefaultLocaleProvider, registry *translations.Registry, opts ...Option) (*Interceptor, error) {
	if locales == nil {
		return nil, ErrLocaleProviderRequired
	}
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	i := &Interceptor{
		locales:     locales,
		registry:    registry,
		logger:      logging.NoOp(),
		methods:     toSet([]string{http.MethodPatch}, strings.ToUpper),
		formats:     toSet([]string{FormatJSON}, strings.ToLower),
		formatParam: DefaultFormatParam,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	if i.errorHandler == nil {
		i.errorHandler = RespondWithError(i.logger)
	}
	return i, nil
}

// Matches reports whether the request method and format trigger the hook.
func (i *Interceptor) Matches(r *http.Request) bool {
	if r == nil {
		return false
	}
	if _, ok := i.methods[strings.ToUpper(r.Method)]; !ok {
		return false
	}
	_, ok := i.formats[RequestFormat(r, i.formatParam)]
	return ok
}

// Intercept runs the hook for one request. Requests that do not match, or
// whose path does not address a node or taxonomy term, are ignored without
// side effects. Only storage failures are returned.
func (i *Interceptor) Intercept(r *http.Request) (Outcome, error) {
	if !i.Matches(r) {
		return OutcomeIgnored, nil
	}
	ctx := r.Context()
	target, ok := ParsePath(r.URL.Path, func() string {
		return i.locales.DefaultLocale(ctx)
	})
	if !ok {
		return OutcomeIgnored, nil
	}
	ctx = logging.ContextWithFields(ctx, map[string]any{"method": r.Method})
	return i.Ensure(ctx, target)
}

// Ensure creates the translation described by target unless it already
// exists. The new translation copies the entity's default-language label.
func (i *Interceptor) Ensure(ctx context.Context, target Target) (Outcome, error) {
	strategy, ok := i.registry.Lookup(target.Kind)
	if !ok {
		return OutcomeUnsupported, nil
	}

	entity, err := strategy.Load(ctx, target.EntityID)
	if err != nil {
		if errors.Is(err, translations.ErrEntityNotFound) {
			return OutcomeNotFound, nil
		}
		return "", fmt.Errorf("interceptor: load %s %q: %w", target.Kind, target.EntityID, err)
	}

	exists, err := strategy.HasTranslation(ctx, entity, target.Locale)
	if err != nil {
		return "", fmt.Errorf("interceptor: check %s %q translation %q: %w", target.Kind, target.EntityID, target.Locale, err)
	}
	if exists {
		return OutcomeExists, nil
	}

	logging.WithTranslationContext(i.logger.WithContext(ctx), target.Kind.String(), entity.ID, target.Locale).
		Debug("translation.missing.create")

	if err := strategy.AddTranslation(ctx, entity, target.Locale, entity.Label); err != nil {
		if errors.Is(err, translations.ErrTranslationExists) {
			return OutcomeExists, nil
		}
		return "", fmt.Errorf("interceptor: create %s %q translation %q: %w", target.Kind, target.EntityID, target.Locale, err)
	}
	return OutcomeCreated, nil
}

func toSet(values []string, normalize func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if trimmed := normalize(strings.TrimSpace(value)); trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}
