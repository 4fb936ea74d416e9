package taxonomy

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TermRepository loads and stores terms keyed by their public tid.
type TermRepository interface {
	Create(ctx context.Context, record *Term) (*Term, error)
	GetByTID(ctx context.Context, tid string) (*Term, error)
	List(ctx context.Context) ([]*Term, error)
}

// TermTranslationRepository tracks per-locale term names. Create returns
// ErrTranslationExists rather than replacing an existing row.
type TermTranslationRepository interface {
	Exists(ctx context.Context, termID uuid.UUID, locale string) (bool, error)
	Create(ctx context.Context, record *TermTranslation) (*TermTranslation, error)
	ListByTerm(ctx context.Context, termID uuid.UUID) ([]*TermTranslation, error)
}

func NewTermRepository(db *bun.DB) repository.Repository[*Term] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Term]{
		NewRecord: func() *Term { return &Term{} },
		GetID: func(t *Term) uuid.UUID {
			return t.ID
		},
		SetID: func(t *Term, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "tid"
		},
		GetIdentifierValue: func(t *Term) string {
			return t.TID
		},
	})
}

func NewTermTranslationRepository(db *bun.DB) repository.Repository[*TermTranslation] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*TermTranslation]{
		NewRecord: func() *TermTranslation { return &TermTranslation{} },
		GetID: func(tr *TermTranslation) uuid.UUID {
			return tr.ID
		},
		SetID: func(tr *TermTranslation, id uuid.UUID) {
			tr.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(tr *TermTranslation) string {
			if tr == nil {
				return ""
			}
			return tr.ID.String()
		},
	})
}
