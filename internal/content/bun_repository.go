package content

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

// BunNodeRepository implements NodeRepository with optional caching.
type BunNodeRepository struct {
	repo repository.Repository[*Node]
}

func NewBunNodeRepository(db *bun.DB) *BunNodeRepository {
	return NewBunNodeRepositoryWithCache(db, nil, nil)
}

func NewBunNodeRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunNodeRepository {
	base := NewNodeRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunNodeRepository{repo: wrapped}
}

func (r *BunNodeRepository) Create(ctx context.Context, record *Node) (*Node, error) {
	if record == nil || record.NID == "" {
		return nil, ErrNodeIDRequired
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunNodeRepository) GetByNID(ctx context.Context, nid string) (*Node, error) {
	result, err := r.repo.GetByIdentifier(ctx, nid)
	if err != nil {
		return nil, mapRepositoryError(err, "node", nid)
	}
	return result, nil
}

func (r *BunNodeRepository) List(ctx context.Context) ([]*Node, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.nid ASC")
		}),
	)
	return records, err
}

// BunNodeTranslationRepository implements NodeTranslationRepository. Lookups
// are never cached so existence checks always observe the latest write.
type BunNodeTranslationRepository struct {
	db   *bun.DB
	repo repository.Repository[*NodeTranslation]
}

func NewBunNodeTranslationRepository(db *bun.DB) *BunNodeTranslationRepository {
	return &BunNodeTranslationRepository{
		db:   db,
		repo: NewNodeTranslationRepository(db),
	}
}

func (r *BunNodeTranslationRepository) Exists(ctx context.Context, nodeID uuid.UUID, locale string) (bool, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.node_id = ?", nodeID)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.locale = ?", locale)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return false, mapRepositoryError(err, "node_translation", translationKey(nodeID, locale))
	}
	return len(records) > 0, nil
}

// Create inserts the translation unless the (node_id, locale) pair already
// exists, in which case ErrTranslationExists is returned.
func (r *BunNodeTranslationRepository) Create(ctx context.Context, record *NodeTranslation) (*NodeTranslation, error) {
	if r.db == nil {
		return nil, ErrRepositoryNotConfig
	}
	if record == nil || record.NodeID == uuid.Nil {
		return nil, ErrNodeIDRequired
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
		return nil, fmt.Errorf("node_translation repository error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("node_translation repository error: %w", err)
	}
	if affected == 0 {
		return nil, ErrTranslationExists
	}
	return record, nil
}

func (r *BunNodeTranslationRepository) ListByNode(ctx context.Context, nodeID uuid.UUID) ([]*NodeTranslation, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.node_id = ?", nodeID).OrderExpr("?TableAlias.locale ASC")
		}),
	)
	return records, err
}

func translationKey(nodeID uuid.UUID, locale string) string {
	return nodeID.String() + ":" + locale
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
