package interceptor

import (
	"strings"

	"github.com/goliatone/go-cms-autotranslate/internal/domain"
)

// Target is the entity and locale addressed by an update request.
type Target struct {
	Kind     domain.ResourceKind
	EntityID string
	Locale   string
	// Elided is set when the path carried no language segment and the
	// default locale was substituted.
	Elided bool
}

// ParsePath extracts the translation target from a request path.
//
// Recognised shapes:
//
//	/{lang}/node/{id}
//	/node/{id}
//	/{lang}/taxonomy/term/{id}
//	/taxonomy/term/{id}
//
// defaultLocale is only called when the language segment is elided. The
// second return value is false for any path that should be left alone,
// including one whose resolved locale is empty.
func ParsePath(path string, defaultLocale func() string) (Target, bool) {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return Target{}, false
	}

	language := segment(segments, 1)
	bundle := segment(segments, 2)
	first := segment(segments, 3)
	second := segment(segments, 4)
	elided := false

	if domain.IsBundle(language) {
		bundle = language
		first = segment(segments, 2)
		second = segment(segments, 3)
		language = ""
		if defaultLocale != nil {
			language = defaultLocale()
		}
		elided = true
	}

	var target Target
	switch {
	case bundle == domain.BundleNode && first != "":
		target = Target{Kind: domain.ResourceNode, EntityID: first}
	case bundle == domain.BundleTaxonomy && first == domain.SubtypeTerm && second != "":
		target = Target{Kind: domain.ResourceTaxonomyTerm, EntityID: second}
	default:
		return Target{}, false
	}

	if language == "" {
		return Target{}, false
	}
	target.Locale = language
	target.Elided = elided
	return target, true
}

func segment(segments []string, idx int) string {
	if idx < len(segments) {
		return segments[idx]
	}
	return ""
}
