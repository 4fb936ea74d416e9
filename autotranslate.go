// Package autotranslate creates a missing translation for a node or taxonomy
// term when an update request addresses it in a language it does not have yet.
//
// Mount Module.Middleware outside the router:
//
//	module, err := autotranslate.New(ctx, autotranslate.DefaultConfig())
//	if err != nil { ... }
//	defer module.Close()
//	http.ListenAndServe(":8080", module.Middleware(router))
package autotranslate

import (
	"context"
	"errors"
	"net/http"

	translationcmd "github.com/goliatone/go-cms-autotranslate/internal/commands/translations"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/di"
	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/interceptor"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
)

type (
	// ResourceKind names a translatable entity family.
	ResourceKind = domain.ResourceKind
	// Target is the entity and locale addressed by a request.
	Target = interceptor.Target
	// Outcome reports what the ensure routine did.
	Outcome = interceptor.Outcome
	// ErrorHandler reacts to persistence failures in the middleware.
	ErrorHandler = interceptor.ErrorHandler
	// Strategy plugs a resource kind into the interceptor.
	Strategy = translations.Strategy
	// Entity is the strategy view of a translatable record.
	Entity = translations.Entity
	// DefaultLocaleProvider supplies the site default language.
	DefaultLocaleProvider = i18n.DefaultLocaleProvider

	Node            = content.Node
	NodeTranslation = content.NodeTranslation
	Term            = taxonomy.Term
	TermTranslation = taxonomy.TermTranslation
	Locale          = i18n.Locale

	EnsureTranslationCommand = translationcmd.EnsureTranslationCommand
	EnsureResult             = translationcmd.EnsureResult
	SeedEntityCommand        = translationcmd.SeedEntityCommand
)

const (
	ResourceNode         = domain.ResourceNode
	ResourceTaxonomyTerm = domain.ResourceTaxonomyTerm

	OutcomeIgnored     = interceptor.OutcomeIgnored
	OutcomeUnsupported = interceptor.OutcomeUnsupported
	OutcomeNotFound    = interceptor.OutcomeNotFound
	OutcomeExists      = interceptor.OutcomeExists
	OutcomeCreated     = interceptor.OutcomeCreated
)

var (
	ErrEntityNotFound    = translations.ErrEntityNotFound
	ErrTranslationExists = translations.ErrTranslationExists

	// ErrModuleNotInitialized is returned by a Module not built with New.
	ErrModuleNotInitialized = errors.New("autotranslate: module not initialized")
)

// RespondWithError logs and replies 500 with a JSON body. It is the default.
var RespondWithError = interceptor.RespondWithError

// LogAndContinue logs and lets the request proceed.
var LogAndContinue = interceptor.LogAndContinue

// ParsePath exposes the request path parser.
var ParsePath = interceptor.ParsePath

// Module is the runtime facade.
type Module struct {
	container *di.Container
}

// New builds a module from cfg and optional DI overrides.
func New(ctx context.Context, cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

func (m *Module) ready() (*di.Container, error) {
	if m == nil || m.container == nil {
		return nil, ErrModuleNotInitialized
	}
	return m.container, nil
}

// Container exposes the DI container for advanced integrations. It is nil
// for an uninitialized module.
func (m *Module) Container() *di.Container {
	if m == nil {
		return nil
	}
	return m.container
}

// Middleware wraps next with the interceptor. When the interceptor is
// disabled next is returned unchanged.
func (m *Module) Middleware(next http.Handler) http.Handler {
	c, err := m.ready()
	if err != nil || !c.Config.Interceptor.Enabled {
		return next
	}
	return c.Interceptor().Middleware(next)
}

// Intercept runs the hook for r without a downstream handler.
func (m *Module) Intercept(r *http.Request) (Outcome, error) {
	c, err := m.ready()
	if err != nil {
		return OutcomeIgnored, err
	}
	return c.Interceptor().Intercept(r)
}

// Ensure creates the translation for target unless it exists.
func (m *Module) Ensure(ctx context.Context, target Target) (Outcome, error) {
	c, err := m.ready()
	if err != nil {
		return OutcomeIgnored, err
	}
	return c.Interceptor().Ensure(ctx, target)
}

// EnsureTranslation runs the ensure command through the command handler.
func (m *Module) EnsureTranslation(ctx context.Context, cmd EnsureTranslationCommand) error {
	c, err := m.ready()
	if err != nil {
		return err
	}
	return c.Commands().Ensure.Execute(ctx, cmd)
}

// Seed stores a node or term through the seed command handler.
func (m *Module) Seed(ctx context.Context, cmd SeedEntityCommand) error {
	c, err := m.ready()
	if err != nil {
		return err
	}
	return c.Commands().Seed.Execute(ctx, cmd)
}

// RegisterAdminAPI mounts the translation admin endpoints under /admin/api.
func (m *Module) RegisterAdminAPI(mux *http.ServeMux) error {
	c, err := m.ready()
	if err != nil {
		return err
	}
	return c.AdminAPI().Register(mux)
}

// Nodes returns the node repository, nil for an uninitialized module. The
// same holds for the other repository accessors.
func (m *Module) Nodes() content.NodeRepository {
	if c, err := m.ready(); err == nil {
		return c.NodeRepository()
	}
	return nil
}

func (m *Module) NodeTranslations() content.NodeTranslationRepository {
	if c, err := m.ready(); err == nil {
		return c.NodeTranslationRepository()
	}
	return nil
}

func (m *Module) Terms() taxonomy.TermRepository {
	if c, err := m.ready(); err == nil {
		return c.TermRepository()
	}
	return nil
}

func (m *Module) TermTranslations() taxonomy.TermTranslationRepository {
	if c, err := m.ready(); err == nil {
		return c.TermTranslationRepository()
	}
	return nil
}

// Close releases resources owned by the module.
func (m *Module) Close() error {
	if c, err := m.ready(); err == nil {
		return c.Close()
	}
	return nil
}
