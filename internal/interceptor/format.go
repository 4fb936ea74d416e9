package interceptor

import (
	"mime"
	"net/http"
	"strings"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"
)

// DefaultFormatParam is the query parameter consulted before Content-Type.
const DefaultFormatParam = "_format"

// RequestFormat negotiates the request format. An explicit query parameter
// wins, then the Content-Type media type; anything else is html.
// Structured-suffix types map to "<subtype>_json" (application/hal+json
// becomes hal_json).
func RequestFormat(r *http.Request, param string) string {
	if r == nil {
		return FormatHTML
	}
	if param != "" && r.URL != nil {
		if value := strings.TrimSpace(r.URL.Query().Get(param)); value != "" {
			return strings.ToLower(value)
		}
	}
	contentType := strings.TrimSpace(r.Header.Get("Content-Type"))
	if contentType == "" {
		return FormatHTML
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatHTML
	}
	switch {
	case mediaType == "application/json":
		return FormatJSON
	case strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"):
		sub := strings.TrimSuffix(strings.TrimPrefix(mediaType, "application/"), "+json")
		return sub + "_json"
	default:
		return FormatHTML
	}
}
