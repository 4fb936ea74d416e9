package content

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NodeRepository loads and stores nodes keyed by their public nid.
type NodeRepository interface {
	Create(ctx context.Context, record *Node) (*Node, error)
	GetByNID(ctx context.Context, nid string) (*Node, error)
	List(ctx context.Context) ([]*Node, error)
}

// NodeTranslationRepository tracks per-locale node translations.
// Create must be compare-and-create: it returns ErrTranslationExists instead
// of replacing an existing row for the same (node, locale).
type NodeTranslationRepository interface {
	Exists(ctx context.Context, nodeID uuid.UUID, locale string) (bool, error)
	Create(ctx context.Context, record *NodeTranslation) (*NodeTranslation, error)
	ListByNode(ctx context.Context, nodeID uuid.UUID) ([]*NodeTranslation, error)
}

func NewNodeRepository(db *bun.DB) repository.Repository[*Node] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Node]{
		NewRecord: func() *Node { return &Node{} },
		GetID: func(n *Node) uuid.UUID {
			return n.ID
		},
		SetID: func(n *Node, id uuid.UUID) {
			n.ID = id
		},
		GetIdentifier: func() string {
			return "nid"
		},
		GetIdentifierValue: func(n *Node) string {
			return n.NID
		},
	})
}

func NewNodeTranslationRepository(db *bun.DB) repository.Repository[*NodeTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*NodeTranslation]{
		NewRecord: func() *NodeTranslation { return &NodeTranslation{} },
		GetID: func(tr *NodeTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *NodeTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *NodeTranslation) string {
			if tr == nil {
				return ""
			}
			return tr.ID.String()
		},
	})
}
