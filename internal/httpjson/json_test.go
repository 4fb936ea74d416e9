package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestWriteEncodesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusCreated, map[string]string{"outcome": "created"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}
	var got map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["outcome"] != "created" {
		t.Fatalf("unexpected body %v", got)
	}
}

func TestWriteWithoutPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusNoContent, nil)
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 204, got %d %q", rec.Code, rec.Body.String())
	}

	Write(nil, http.StatusOK, ErrorBody{Error: "ignored"})
}

func TestFailCarriesTextCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{
			name: "coded",
			err:  goerrors.Wrap(errors.New("node 42 missing"), goerrors.CategoryNotFound, "translation.ensure").WithTextCode("AUTOTRANSLATE_ENTITY_NOT_FOUND"),
			code: "AUTOTRANSLATE_ENTITY_NOT_FOUND",
		},
		{name: "plain", err: errors.New("disk full")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Fail(rec, http.StatusInternalServerError, "internal_error", tc.err)

			var body ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != "internal_error" || body.Message != tc.err.Error() || body.Code != tc.code {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}
