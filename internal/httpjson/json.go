// Package httpjson writes the JSON bodies shared by the interceptor
// middleware and the admin API.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// ErrorBody is the payload of every JSON error response. Code carries the
// go-errors text code when the failure has one.
type ErrorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Write encodes payload with the given status. A nil payload sends headers only.
func Write(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// Fail writes an ErrorBody built from err under the given error label.
func Fail(w http.ResponseWriter, status int, label string, err error) {
	body := ErrorBody{Error: label}
	if err != nil {
		body.Message = err.Error()
		body.Code = TextCode(err)
	}
	Write(w, status, body)
}

// TextCode returns the go-errors text code attached to err, if any.
func TextCode(err error) string {
	var coded *goerrors.Error
	if errors.As(err, &coded) {
		return coded.TextCode
	}
	return ""
}
