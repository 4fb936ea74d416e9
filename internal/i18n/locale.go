package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	ErrNoDefaultLocale = errors.New("i18n: no default locale configured")
	ErrLocaleNotFound  = errors.New("i18n: locale not found")
)

// Locale represents a language known to the site.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:l"`

	ID        uuid.UUID `bun:",pk,type:uuid"                              json:"id"`
	Code      string    `bun:"code,notnull,unique"                        json:"code"`
	Display   string    `bun:"display_name,notnull"                       json:"display_name"`
	IsActive  bool      `bun:"is_active,notnull,default:true"             json:"is_active"`
	IsDefault bool      `bun:"is_default,notnull,default:false"           json:"is_default"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// LocaleRepository resolves locales, in particular the site default.
type LocaleRepository interface {
	Create(ctx context.Context, locale *Locale) (*Locale, error)
	GetByCode(ctx context.Context, code string) (*Locale, error)
	GetDefault(ctx context.Context) (*Locale, error)
	// SetDefault flags code (case-insensitive) as the only default, stores
	// it with the given spelling and activates it. The locale must exist.
	SetDefault(ctx context.Context, code string) error
}

// MemoryLocaleRepository stores locales by code.
type MemoryLocaleRepository struct {
	mu      sync.RWMutex
	locales map[string]*Locale
}

func NewMemoryLocaleRepository() *MemoryLocaleRepository {
	return &MemoryLocaleRepository{locales: make(map[string]*Locale)}
}

// Create inserts or replaces a locale. Flagging a locale as default clears
// the flag on the others.
func (m *MemoryLocaleRepository) Create(_ context.Context, locale *Locale) (*Locale, error) {
	if locale == nil || strings.TrimSpace(locale.Code) == "" {
		return nil, fmt.Errorf("i18n: locale code required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *locale
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	if copied.IsDefault {
		for _, existing := range m.locales {
			existing.IsDefault = false
		}
	}
	m.locales[localeKey(copied.Code)] = &copied
	out := copied
	return &out, nil
}

// GetByCode resolves a locale by code (case-insensitive).
func (m *MemoryLocaleRepository) GetByCode(_ context.Context, code string) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	loc, ok := m.locales[localeKey(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
	}
	copied := *loc
	return &copied, nil
}

func (m *MemoryLocaleRepository) SetDefault(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := localeKey(code)
	target, ok := m.locales[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
	}
	for _, existing := range m.locales {
		existing.IsDefault = false
	}
	target.Code = strings.TrimSpace(code)
	target.IsDefault = true
	target.IsActive = true
	return nil
}

func (m *MemoryLocaleRepository) GetDefault(_ context.Context) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, loc := range m.locales {
		if loc.IsDefault && loc.IsActive {
			copied := *loc
			return &copied, nil
		}
	}
	return nil, ErrNoDefaultLocale
}

func localeKey(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// BunLocaleRepository reads locales through go-repository-bun.
type BunLocaleRepository struct {
	db   *bun.DB
	repo repository.Repository[*Locale]
}

func NewBunLocaleRepository(db *bun.DB) *BunLocaleRepository {
	return &BunLocaleRepository{
		db: db,
		repo: repository.MustNewRepository(db, repository.ModelHandlers[*Locale]{
			NewRecord: func() *Locale { return &Locale{} },
			GetID: func(l *Locale) uuid.UUID {
				return l.ID
			},
			SetID: func(l *Locale, id uuid.UUID) {
				l.ID = id
			},
			GetIdentifier: func() string {
				return "code"
			},
			GetIdentifierValue: func(l *Locale) string {
				return l.Code
			},
		}),
	}
}

func (r *BunLocaleRepository) Create(ctx context.Context, locale *Locale) (*Locale, error) {
	if locale.ID == uuid.Nil {
		locale.ID = uuid.New()
	}
	return r.repo.Create(ctx, locale)
}

// GetByCode resolves a locale by code (case-insensitive).
func (r *BunLocaleRepository) GetByCode(ctx context.Context, code string) (*Locale, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(?TableAlias.code) = ?", localeKey(code))
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
		}
		return nil, fmt.Errorf("locale repository error: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
	}
	return records[0], nil
}

func (r *BunLocaleRepository) SetDefault(ctx context.Context, code string) error {
	key := localeKey(code)
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewUpdate().Table("locales").
			Set("is_default = ?", false).
			Where("lower(code) <> ?", key).
			Exec(ctx); err != nil {
			return fmt.Errorf("locale repository error: %w", err)
		}
		res, err := tx.NewUpdate().Table("locales").
			Set("is_default = ?", true).
			Set("is_active = ?", true).
			Set("code = ?", strings.TrimSpace(code)).
			Where("lower(code) = ?", key).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("locale repository error: %w", err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
		}
		return nil
	})
}

func (r *BunLocaleRepository) GetDefault(ctx context.Context) (*Locale, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_default = ?", true).Where("?TableAlias.is_active = ?", true)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("locale repository error: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoDefaultLocale
	}
	return records[0], nil
}
