package interceptor

import (
	"net/http"

	"github.com/goliatone/go-cms-autotranslate/internal/httpjson"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

// ErrorHandler reacts to a failed Intercept. Returning true stops the chain;
// the handler is then responsible for the response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error) bool

// RespondWithError logs the failure and replies 500 with a JSON body.
func RespondWithError(logger interfaces.Logger) ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) bool {
		if logger != nil {
			logger.WithContext(r.Context()).Error("translation.ensure.failed", "error", err, "path", r.URL.Path)
		}
		httpjson.Fail(w, http.StatusInternalServerError, "internal_error", err)
		return true
	}
}

// LogAndContinue logs the failure and lets the request reach the router.
func LogAndContinue(logger interfaces.Logger) ErrorHandler {
	return func(_ http.ResponseWriter, r *http.Request, err error) bool {
		if logger != nil {
			logger.WithContext(r.Context()).Error("translation.ensure.failed", "error", err, "path", r.URL.Path)
		}
		return false
	}
}

// Middleware runs Intercept before next. Mount it outside the router so it
// sees every request.
func (i *Interceptor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := i.Intercept(r); err != nil {
			if i.errorHandler(w, r, err) {
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
