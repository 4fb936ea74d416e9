package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/httpjson"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
	goerrors "github.com/goliatone/go-errors"
)

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

// decodeJSON reads an optional body. An empty body leaves target untouched.
func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	payload.Code = httpjson.TextCode(err)
	httpjson.Write(w, status, payload)
}

func mapError(err error) (int, httpjson.ErrorBody) {
	if err == nil {
		return http.StatusInternalServerError, httpjson.ErrorBody{Error: "unknown_error"}
	}

	var nodeNotFound *content.NotFoundError
	if errors.As(err, &nodeNotFound) {
		return http.StatusNotFound, httpjson.ErrorBody{
			Error:   "not_found",
			Message: nodeNotFound.Error(),
		}
	}

	var termNotFound *taxonomy.NotFoundError
	if errors.As(err, &termNotFound) {
		return http.StatusNotFound, httpjson.ErrorBody{
			Error:   "not_found",
			Message: termNotFound.Error(),
		}
	}

	if errors.Is(err, translations.ErrEntityNotFound) || errors.Is(err, translations.ErrUnknownKind) {
		return http.StatusNotFound, httpjson.ErrorBody{
			Error:   "not_found",
			Message: err.Error(),
		}
	}

	var issues validation.Errors
	if errors.As(err, &issues) {
		return http.StatusBadRequest, httpjson.ErrorBody{
			Error:   "validation_failed",
			Message: "request is invalid",
			Fields:  issueMessages(issues),
		}
	}

	if goerrors.IsCategory(err, goerrors.CategoryConflict) {
		return http.StatusConflict, httpjson.ErrorBody{
			Error:   "conflict",
			Message: err.Error(),
		}
	}

	if goerrors.IsCategory(err, goerrors.CategoryValidation) {
		return http.StatusBadRequest, httpjson.ErrorBody{
			Error:   "validation_failed",
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, httpjson.ErrorBody{
		Error:   "internal_error",
		Message: err.Error(),
	}
}

func issueMessages(issues validation.Errors) map[string]string {
	if len(issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(issues))
	for field, issue := range issues {
		if issue != nil {
			out[field] = issue.Error()
		}
	}
	return out
}
