package content

import (
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Node is the canonical record for a translatable content item.
type Node struct {
	bun.BaseModel `bun:"table:nodes,alias:n"`

	ID        uuid.UUID `bun:",pk,type:uuid"       json:"id"`
	NID       string    `bun:"nid,notnull,unique"  json:"nid"`
	Type      string    `bun:"type,notnull"        json:"type"`
	Title     string    `bun:"title,notnull"       json:"title"`
	Slug      string    `bun:"slug,notnull"        json:"slug"`
	Locale    string    `bun:"locale,notnull"      json:"locale"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Translations []*NodeTranslation `bun:"rel:has-many,join:id=node_id" json:"translations,omitempty"`
}

// NodeTranslation stores the localized title of a node. One row per
// (node, locale) pair.
type NodeTranslation struct {
	bun.BaseModel `bun:"table:node_translations,alias:nt"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	NodeID    uuid.UUID `bun:"node_id,notnull,type:uuid,unique:node_translation_locale" json:"node_id"`
	Locale    string    `bun:"locale,notnull,unique:node_translation_locale"             json:"locale"`
	Title     string    `bun:"title,notnull"                                            json:"title"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp"            json:"created_at"`
}

// Label returns the default-language display label.
func (n *Node) Label() string {
	if n == nil {
		return ""
	}
	return n.Title
}

// NewNode builds a node record with a fresh primary key and a slug derived
// from the title.
func NewNode(nid, nodeType, title, locale string) *Node {
	now := time.Now().UTC()
	return &Node{
		ID:        uuid.New(),
		NID:       strings.TrimSpace(nid),
		Type:      strings.TrimSpace(nodeType),
		Title:     title,
		Slug:      slugFor(title, nid),
		Locale:    strings.TrimSpace(locale),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func slugFor(title, fallback string) string {
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return "node-" + strings.TrimSpace(fallback)
	}
	return normalized
}
