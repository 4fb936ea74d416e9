package taxonomy

import (
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Term is a taxonomy term belonging to a vocabulary.
type Term struct {
	bun.BaseModel `bun:"table:taxonomy_terms,alias:tt"`

	ID         uuid.UUID `bun:",pk,type:uuid"        json:"id"`
	TID        string    `bun:"tid,notnull,unique"   json:"tid"`
	Vocabulary string    `bun:"vocabulary,notnull"   json:"vocabulary"`
	Name       string    `bun:"name,notnull"         json:"name"`
	Slug       string    `bun:"slug,notnull"         json:"slug"`
	Locale     string    `bun:"locale,notnull"       json:"locale"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*TermTranslation `bun:"rel:has-many,join:id=term_id" json:"translations,omitempty"`
}

// TermTranslation stores the localized name of a term.
type TermTranslation struct {
	bun.BaseModel `bun:"table:taxonomy_term_translations,alias:ttt"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	TermID    uuid.UUID `bun:"term_id,notnull,type:uuid,unique:term_translation_locale" json:"term_id"`
	Locale    string    `bun:"locale,notnull,unique:term_translation_locale"             json:"locale"`
	Name      string    `bun:"name,notnull"                                             json:"name"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp"            json:"created_at"`
}

// Label returns the term name in its default language.
func (t *Term) Label() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// NewTerm builds a term record with a fresh primary key.
func NewTerm(tid, vocabulary, name, locale string) *Term {
	now := time.Now().UTC()
	termSlug, err := slug.Normalize(name)
	if err != nil || termSlug == "" {
		termSlug = "term-" + strings.TrimSpace(tid)
	}
	return &Term{
		ID:         uuid.New(),
		TID:        strings.TrimSpace(tid),
		Vocabulary: strings.TrimSpace(vocabulary),
		Name:       name,
		Slug:       termSlug,
		Locale:     strings.TrimSpace(locale),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
