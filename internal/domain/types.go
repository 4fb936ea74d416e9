package domain

import "strings"

// ResourceKind identifies a translatable entity family.
type ResourceKind string

const (
	// ResourceNode covers content items addressed as /node/{id}
	ResourceNode ResourceKind = "node"
	// ResourceTaxonomyTerm covers terms addressed as /taxonomy/term/{id}
	ResourceTaxonomyTerm ResourceKind = "taxonomy_term"
)

// Path segments recognised by the request interceptor.
const (
	BundleNode     = "node"
	BundleTaxonomy = "taxonomy"
	SubtypeTerm    = "term"
)

func (k ResourceKind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the known resource kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case ResourceNode, ResourceTaxonomyTerm:
		return true
	default:
		return false
	}
}

// ParseResourceKind accepts canonical kinds plus the path aliases used on the
// wire ("taxonomy", "term").
func ParseResourceKind(raw string) (ResourceKind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ResourceNode):
		return ResourceNode, true
	case string(ResourceTaxonomyTerm), BundleTaxonomy, SubtypeTerm:
		return ResourceTaxonomyTerm, true
	default:
		return "", false
	}
}

// IsBundle reports whether the segment names a bundle. It drives the
// language-elision rule: a path starting with a bundle carries no locale.
func IsBundle(segment string) bool {
	return segment == BundleNode || segment == BundleTaxonomy
}
