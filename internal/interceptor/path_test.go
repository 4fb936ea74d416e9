package interceptor

import (
	"testing"

	"github.com/goliatone/go-cms-autotranslate/internal/domain"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		def     string
		want    Target
		matched bool
	}{
		{name: "node with language", path: "/de/node/42", def: "en", want: Target{Kind: domain.ResourceNode, EntityID: "42", Locale: "de"}, matched: true},
		{name: "node elided", path: "/node/42", def: "en", want: Target{Kind: domain.ResourceNode, EntityID: "42", Locale: "en", Elided: true}, matched: true},
		{name: "node trailing segments", path: "/de/node/42/edit", def: "en", want: Target{Kind: domain.ResourceNode, EntityID: "42", Locale: "de"}, matched: true},
		{name: "term with language", path: "/fr/taxonomy/term/99", def: "en", want: Target{Kind: domain.ResourceTaxonomyTerm, EntityID: "99", Locale: "fr"}, matched: true},
		{name: "term elided", path: "/taxonomy/term/7", def: "en", want: Target{Kind: domain.ResourceTaxonomyTerm, EntityID: "7", Locale: "en", Elided: true}, matched: true},
		{name: "invalid code passes through", path: "/xx-invalid/node/1", def: "en", want: Target{Kind: domain.ResourceNode, EntityID: "1", Locale: "xx-invalid"}, matched: true},
		{name: "unknown bundle", path: "/fr/widget/5", def: "en"},
		{name: "root", path: "/", def: "en"},
		{name: "empty", path: "", def: "en"},
		{name: "bundle only", path: "/node", def: "en"},
		{name: "node without id", path: "/de/node", def: "en"},
		{name: "node empty id", path: "/de/node/", def: "en"},
		{name: "elided node empty id", path: "/node/", def: "en"},
		{name: "taxonomy without term marker", path: "/de/taxonomy/vocabulary/3", def: "en"},
		{name: "taxonomy term without id", path: "/taxonomy/term", def: "en"},
		{name: "taxonomy term empty id", path: "/de/taxonomy/term/", def: "en"},
		{name: "elided with empty default", path: "/node/42", def: ""},
		{name: "empty language segment", path: "//node/42", def: "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParsePath(tc.path, func() string { return tc.def })
			if ok != tc.matched {
				t.Fatalf("expected matched=%v, got %v (%+v)", tc.matched, ok, got)
			}
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestParsePath_DefaultLocaleOnlyWhenElided(t *testing.T) {
	calls := 0
	def := func() string {
		calls++
		return "en"
	}
	if _, ok := ParsePath("/de/node/1", def); !ok {
		t.Fatal("expected match")
	}
	if calls != 0 {
		t.Fatalf("default locale consulted %d times for explicit language", calls)
	}
	if _, ok := ParsePath("/node/1", def); !ok {
		t.Fatal("expected match")
	}
	if calls != 1 {
		t.Fatalf("expected one default locale lookup, got %d", calls)
	}
}
