package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	translationcmd "github.com/goliatone/go-cms-autotranslate/internal/commands/translations"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

// EnsureExecutor runs the ensure translation command.
type EnsureExecutor interface {
	Execute(ctx context.Context, msg translationcmd.EnsureTranslationCommand) error
}

// AdminAPI registers admin endpoints for inspecting and creating translations.
type AdminAPI struct {
	basePath         string
	nodes            content.NodeRepository
	nodeTranslations content.NodeTranslationRepository
	terms            taxonomy.TermRepository
	termTranslations taxonomy.TermTranslationRepository
	ensure           EnsureExecutor
	logger           interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath: "/admin/api",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithNodeRepositories wires node lookups.
func WithNodeRepositories(nodes content.NodeRepository, translations content.NodeTranslationRepository) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.nodes = nodes
			api.nodeTranslations = translations
		}
	}
}

// WithTermRepositories wires taxonomy term lookups.
func WithTermRepositories(terms taxonomy.TermRepository, translations taxonomy.TermTranslationRepository) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.terms = terms
			api.termTranslations = translations
		}
	}
}

// WithEnsureHandler wires the command used by the ensure endpoints.
func WithEnsureHandler(handler EnsureExecutor) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.ensure = handler
		}
	}
}

func WithLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if api != nil {
			api.logger = logger
		}
	}
}

// Register attaches the admin endpoints to the provided mux.
func (api *AdminAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: admin api is nil")
	}

	base := joinPath(api.basePath, "")

	api.registerTranslationRoutes(mux, base)

	return nil
}
