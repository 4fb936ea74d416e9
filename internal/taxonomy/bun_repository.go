package taxonomy

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTermRepository implements TermRepository with optional caching.
type BunTermRepository struct {
	repo repository.Repository[*Term]
}

func NewBunTermRepository(db *bun.DB) *BunTermRepository {
	return NewBunTermRepositoryWithCache(db, nil, nil)
}

func NewBunTermRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunTermRepository {
	base := NewTermRepository(db)
	if cacheService != nil && keySerializer != nil {
		base = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunTermRepository{repo: base}
}

func (r *BunTermRepository) Create(ctx context.Context, record *Term) (*Term, error) {
	if record == nil || record.TID == "" {
		return nil, ErrTermIDRequired
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return r.repo.Create(ctx, record)
}

func (r *BunTermRepository) GetByTID(ctx context.Context, tid string) (*Term, error) {
	result, err := r.repo.GetByIdentifier(ctx, tid)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &NotFoundError{Resource: "taxonomy_term", Key: tid}
		}
		return nil, fmt.Errorf("taxonomy_term repository error: %w", err)
	}
	return result, nil
}

func (r *BunTermRepository) List(ctx context.Context) ([]*Term, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.tid ASC")
		}),
	)
	return records, err
}

// BunTermTranslationRepository implements TermTranslationRepository on top of
// the (term_id, locale) unique constraint.
type BunTermTranslationRepository struct {
	db   *bun.DB
	repo repository.Repository[*TermTranslation]
}

func NewBunTermTranslationRepository(db *bun.DB) *BunTermTranslationRepository {
	return &BunTermTranslationRepository{
		db:   db,
		repo: NewTermTranslationRepository(db),
	}
}

func (r *BunTermTranslationRepository) Exists(ctx context.Context, termID uuid.UUID, locale string) (bool, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.term_id = ?", termID).Where("?TableAlias.locale = ?", locale)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return false, fmt.Errorf("taxonomy_term_translation repository error: %w", err)
	}
	return len(records) > 0, nil
}

func (r *BunTermTranslationRepository) Create(ctx context.Context, record *TermTranslation) (*TermTranslation, error) {
	if r.db == nil {
		return nil, ErrDatabaseRequired
	}
	if record == nil || record.TermID == uuid.Nil {
		return nil, ErrTermIDRequired
	}
	if record.Locale == "" {
		return nil, ErrLocaleRequired
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	res, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("taxonomy_term_translation repository error: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("taxonomy_term_translation repository error: %w", err)
	} else if affected == 0 {
		return nil, ErrTranslationExists
	}
	return record, nil
}

func (r *BunTermTranslationRepository) ListByTerm(ctx context.Context, termID uuid.UUID) ([]*TermTranslation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.term_id = ?", termID).OrderExpr("?TableAlias.locale ASC")
		}),
	)
	return records, err
}
