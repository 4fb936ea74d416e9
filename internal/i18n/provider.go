package i18n

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

// DefaultLocaleProvider supplies the site-wide fallback language used when a
// request path carries no language segment.
type DefaultLocaleProvider interface {
	DefaultLocale(ctx context.Context) string
}

// StaticProvider always returns the configured code.
type StaticProvider string

func (p StaticProvider) DefaultLocale(context.Context) string {
	return strings.TrimSpace(string(p))
}

// RepositoryProvider reads the default locale from a LocaleRepository and
// falls back to a static code when none is flagged or the lookup fails.
type RepositoryProvider struct {
	repo     LocaleRepository
	fallback string
	logger   interfaces.Logger
}

// ProviderOption configures a RepositoryProvider.
type ProviderOption func(*RepositoryProvider)

// WithLogger injects the logger used to report lookup failures.
func WithLogger(logger interfaces.Logger) ProviderOption {
	return func(p *RepositoryProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewRepositoryProvider(repo LocaleRepository, fallback string, opts ...ProviderOption) *RepositoryProvider {
	p := &RepositoryProvider{
		repo:     repo,
		fallback: strings.TrimSpace(fallback),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RepositoryProvider) DefaultLocale(ctx context.Context) string {
	if p.repo == nil {
		return p.fallback
	}
	locale, err := p.repo.GetDefault(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoDefaultLocale) {
			p.logger.WithContext(ctx).Warn("i18n.default_locale.lookup_failed", "error", err, "fallback", p.fallback)
		}
		return p.fallback
	}
	if code := strings.TrimSpace(locale.Code); code != "" {
		return code
	}
	return p.fallback
}
