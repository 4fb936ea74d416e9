package content

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryNodeRepository is an in-memory implementation for scaffolding and tests.
type MemoryNodeRepository struct {
	mu       sync.RWMutex
	nodes    map[uuid.UUID]*Node
	nidIndex map[string]uuid.UUID
}

// NewMemoryNodeRepository creates an empty in-memory node repository.
func NewMemoryNodeRepository() *MemoryNodeRepository {
	return &MemoryNodeRepository{
		nodes:    make(map[uuid.UUID]*Node),
		nidIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts or replaces the supplied node. A replaced node keeps its
// primary key so existing translations stay attached.
func (m *MemoryNodeRepository) Create(_ context.Context, record *Node) (*Node, error) {
	if record == nil || strings.TrimSpace(record.NID) == "" {
		return nil, ErrNodeIDRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneNode(record)
	if existing, ok := m.nidIndex[copied.NID]; ok {
		copied.ID = existing
	}
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.nodes[copied.ID] = copied
	m.nidIndex[copied.NID] = copied.ID
	return cloneNode(copied), nil
}

// GetByNID retrieves a node by its public identifier.
func (m *MemoryNodeRepository) GetByNID(_ context.Context, nid string) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.nidIndex[nid]
	if !ok {
		return nil, &NotFoundError{Resource: "node", Key: nid}
	}
	return cloneNode(m.nodes[id]), nil
}

// List returns all nodes ordered by nid.
func (m *MemoryNodeRepository) List(_ context.Context) ([]*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Node, 0, len(m.nodes))
	for _, rec := range m.nodes {
		out = append(out, cloneNode(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NID < out[j].NID })
	return out, nil
}

func cloneNode(src *Node) *Node {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.Translations) > 0 {
		copied.Translations = make([]*NodeTranslation, 0, len(src.Translations))
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

// MemoryNodeTranslationRepository stores node translations in-memory.
type MemoryNodeTranslationRepository struct {
	mu           sync.RWMutex
	translations map[uuid.UUID]map[string]*NodeTranslation
}

// NewMemoryNodeTranslationRepository constructs the repository.
func NewMemoryNodeTranslationRepository() *MemoryNodeTranslationRepository {
	return &MemoryNodeTranslationRepository{
		translations: make(map[uuid.UUID]map[string]*NodeTranslation),
	}
}

// Exists reports whether a translation for the locale is stored.
func (m *MemoryNodeTranslationRepository) Exists(_ context.Context, nodeID uuid.UUID, locale string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.translations[nodeID][locale]
	return ok, nil
}

// Create checks and inserts under the same lock so concurrent callers cannot
// both create the same (node, locale) row.
func (m *MemoryNodeTranslationRepository) Create(_ context.Context, record *NodeTranslation) (*NodeTranslation, error) {
	if record == nil || record.NodeID == uuid.Nil {
		return nil, ErrNodeIDRequired
	}
	if strings.TrimSpace(record.Locale) == "" {
		return nil, ErrLocaleRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	byLocale, ok := m.translations[record.NodeID]
	if !ok {
		byLocale = make(map[string]*NodeTranslation)
		m.translations[record.NodeID] = byLocale
	}
	if _, exists := byLocale[record.Locale]; exists {
		return nil, ErrTranslationExists
	}
	copied := *record
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	byLocale[copied.Locale] = &copied
	out := copied
	return &out, nil
}

// ListByNode returns the translations of a node ordered by locale.
func (m *MemoryNodeTranslationRepository) ListByNode(_ context.Context, nodeID uuid.UUID) ([]*NodeTranslation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byLocale := m.translations[nodeID]
	out := make([]*NodeTranslation, 0, len(byLocale))
	for _, tr := range byLocale {
		local := *tr
		out = append(out, &local)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locale < out[j].Locale })
	return out, nil
}
