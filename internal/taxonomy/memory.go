package taxonomy

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryTermRepository keeps terms in-memory for tests and scaffolding.
type MemoryTermRepository struct {
	mu       sync.RWMutex
	terms    map[uuid.UUID]*Term
	tidIndex map[string]uuid.UUID
}

func NewMemoryTermRepository() *MemoryTermRepository {
	return &MemoryTermRepository{
		terms:    make(map[uuid.UUID]*Term),
		tidIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts or replaces a term. A replaced term keeps its primary key.
func (m *MemoryTermRepository) Create(_ context.Context, record *Term) (*Term, error) {
	if record == nil || strings.TrimSpace(record.TID) == "" {
		return nil, ErrTermIDRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneTerm(record)
	if existing, ok := m.tidIndex[copied.TID]; ok {
		copied.ID = existing
	}
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.terms[copied.ID] = copied
	m.tidIndex[copied.TID] = copied.ID
	return cloneTerm(copied), nil
}

func (m *MemoryTermRepository) GetByTID(_ context.Context, tid string) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.tidIndex[tid]
	if !ok {
		return nil, &NotFoundError{Resource: "taxonomy_term", Key: tid}
	}
	return cloneTerm(m.terms[id]), nil
}

func (m *MemoryTermRepository) List(_ context.Context) ([]*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Term, 0, len(m.terms))
	for _, rec := range m.terms {
		out = append(out, cloneTerm(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TID < out[j].TID })
	return out, nil
}

func cloneTerm(src *Term) *Term {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Translations) > 0 {
		copied.Translations = make([]*TermTranslation, 0, len(src.Translations))
		for _, tr := range src.Translations {
			if tr == nil {
				continue
			}
			local := *tr
			copied.Translations = append(copied.Translations, &local)
		}
	}
	return &copied
}

// MemoryTermTranslationRepository stores term translations keyed by term and locale.
type MemoryTermTranslationRepository struct {
	mu    sync.RWMutex
	items map[string]*TermTranslation
}

func NewMemoryTermTranslationRepository() *MemoryTermTranslationRepository {
	return &MemoryTermTranslationRepository{
		items: make(map[string]*TermTranslation),
	}
}

func (m *MemoryTermTranslationRepository) Exists(_ context.Context, termID uuid.UUID, locale string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[translationKey(termID, locale)]
	return ok, nil
}

func (m *MemoryTermTranslationRepository) Create(_ context.Context, record *TermTranslation) (*TermTranslation, error) {
	if record == nil || record.TermID == uuid.Nil {
		return nil, ErrTermIDRequired
	}
	if strings.TrimSpace(record.Locale) == "" {
		return nil, ErrLocaleRequired
	}
	key := translationKey(record.TermID, record.Locale)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.items[key]; exists {
		return nil, ErrTranslationExists
	}
	copied := *record
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.items[key] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryTermTranslationRepository) ListByTerm(_ context.Context, termID uuid.UUID) ([]*TermTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*TermTranslation, 0)
	for _, tr := range m.items {
		if tr.TermID != termID {
			continue
		}
		local := *tr
		out = append(out, &local)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locale < out[j].Locale })
	return out, nil
}

func translationKey(termID uuid.UUID, locale string) string {
	return termID.String() + ":" + locale
}
