package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	translationcmd "github.com/goliatone/go-cms-autotranslate/internal/commands/translations"
	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/goliatone/go-cms-autotranslate/internal/httpjson"
	"github.com/goliatone/go-cms-autotranslate/internal/interceptor"
	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
)

type ensurePayload struct {
	Locale string `json:"locale,omitempty"`
}

type ensureResponse struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	Locale   string `json:"locale"`
	Elided   bool   `json:"default_locale,omitempty"`
	Outcome  string `json:"outcome"`
}

type translationResponse struct {
	Locale    string    `json:"locale"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type entityTranslationsResponse struct {
	Kind         string                `json:"kind"`
	EntityID     string                `json:"entity_id"`
	Bundle       string                `json:"bundle"`
	Locale       string                `json:"locale"`
	Label        string                `json:"label"`
	Translations []translationResponse `json:"translations"`
}

func (api *AdminAPI) registerTranslationRoutes(mux *http.ServeMux, base string) {
	collection := joinPath(base, "translations/{kind}/{id}")
	mux.HandleFunc("GET "+collection, api.handleListTranslations)
	mux.HandleFunc("POST "+collection, api.handleEnsureTranslation)
	mux.HandleFunc("POST "+joinPath(collection, "{locale}"), api.handleEnsureTranslation)
}

func (api *AdminAPI) handleListTranslations(w http.ResponseWriter, r *http.Request) {
	kind, ok := domain.ParseResourceKind(r.PathValue("kind"))
	if !ok {
		writeError(w, fmt.Errorf("%w: %q", translations.ErrUnknownKind, r.PathValue("kind")))
		return
	}
	id := strings.TrimSpace(r.PathValue("id"))

	var (
		resp *entityTranslationsResponse
		err  error
	)
	switch kind {
	case domain.ResourceNode:
		resp, err = api.nodeTranslationsFor(r.Context(), id)
	case domain.ResourceTaxonomyTerm:
		resp, err = api.termTranslationsFor(r.Context(), id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, resp)
}

func (api *AdminAPI) nodeTranslationsFor(ctx context.Context, nid string) (*entityTranslationsResponse, error) {
	if api.nodes == nil || api.nodeTranslations == nil {
		return nil, fmt.Errorf("%w: %s", translations.ErrUnknownKind, domain.ResourceNode)
	}
	node, err := api.nodes.GetByNID(ctx, nid)
	if err != nil {
		return nil, err
	}
	rows, err := api.nodeTranslations.ListByNode(ctx, node.ID)
	if err != nil {
		return nil, err
	}
	resp := &entityTranslationsResponse{
		Kind:         domain.ResourceNode.String(),
		EntityID:     node.NID,
		Bundle:       node.Type,
		Locale:       node.Locale,
		Label:        node.Label(),
		Translations: make([]translationResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Translations = append(resp.Translations, translationResponse{
			Locale:    row.Locale,
			Label:     row.Title,
			CreatedAt: row.CreatedAt,
		})
	}
	return resp, nil
}

func (api *AdminAPI) termTranslationsFor(ctx context.Context, tid string) (*entityTranslationsResponse, error) {
	if api.terms == nil || api.termTranslations == nil {
		return nil, fmt.Errorf("%w: %s", translations.ErrUnknownKind, domain.ResourceTaxonomyTerm)
	}
	term, err := api.terms.GetByTID(ctx, tid)
	if err != nil {
		return nil, err
	}
	rows, err := api.termTranslations.ListByTerm(ctx, term.ID)
	if err != nil {
		return nil, err
	}
	resp := &entityTranslationsResponse{
		Kind:         domain.ResourceTaxonomyTerm.String(),
		EntityID:     term.TID,
		Bundle:       term.Vocabulary,
		Locale:       term.Locale,
		Label:        term.Label(),
		Translations: make([]translationResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Translations = append(resp.Translations, translationResponse{
			Locale:    row.Locale,
			Label:     row.Name,
			CreatedAt: row.CreatedAt,
		})
	}
	return resp, nil
}

func (api *AdminAPI) handleEnsureTranslation(w http.ResponseWriter, r *http.Request) {
	if api.ensure == nil {
		httpjson.Write(w, http.StatusNotImplemented, httpjson.ErrorBody{Error: "not_implemented", Message: "ensure handler not configured"})
		return
	}

	var payload ensurePayload
	if err := decodeJSON(r, &payload); err != nil {
		httpjson.Write(w, http.StatusBadRequest, httpjson.ErrorBody{Error: "bad_request", Message: err.Error()})
		return
	}
	locale := strings.TrimSpace(r.PathValue("locale"))
	if locale == "" {
		locale = strings.TrimSpace(payload.Locale)
	}

	var result translationcmd.EnsureResult
	err := api.ensure.Execute(r.Context(), translationcmd.EnsureTranslationCommand{
		Kind:     r.PathValue("kind"),
		EntityID: r.PathValue("id"),
		Locale:   locale,
		Result:   &result,
	})
	if err != nil {
		if api.logger != nil {
			logger := api.logger.WithContext(r.Context())
			logging.WithTranslationContext(logger, r.PathValue("kind"), r.PathValue("id"), locale).
				Error("admin.translation.ensure.failed", "error", err)
		}
		writeError(w, err)
		return
	}

	resp := ensureResponse{
		Kind:     result.Target.Kind.String(),
		EntityID: result.Target.EntityID,
		Locale:   result.Target.Locale,
		Elided:   result.Target.Elided,
		Outcome:  string(result.Outcome),
	}
	switch result.Outcome {
	case interceptor.OutcomeCreated:
		httpjson.Write(w, http.StatusCreated, resp)
	case interceptor.OutcomeNotFound, interceptor.OutcomeUnsupported:
		httpjson.Write(w, http.StatusNotFound, resp)
	default:
		httpjson.Write(w, http.StatusOK, resp)
	}
}
