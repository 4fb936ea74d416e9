package translations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrEntityNotFound     = errors.New("translations: entity not found")
	ErrTranslationExists  = errors.New("translations: translation already exists")
	ErrUnknownKind        = errors.New("translations: unknown resource kind")
	ErrStrategyRequired   = errors.New("translations: strategy required")
	ErrDuplicateKind      = errors.New("translations: resource kind already registered")
	ErrRepositoryRequired = errors.New("translations: repository required")
)

// Entity is the minimal view of a translatable record shared by strategies.
type Entity struct {
	Kind  domain.ResourceKind
	ID    string
	Key   uuid.UUID
	Label string
}

// Strategy loads one resource kind and manages its translations.
type Strategy interface {
	Kind() domain.ResourceKind
	// LabelField names the field copied into a new translation.
	LabelField() string
	Load(ctx context.Context, id string) (*Entity, error)
	HasTranslation(ctx context.Context, entity *Entity, locale string) (bool, error)
	AddTranslation(ctx context.Context, entity *Entity, locale, label string) error
}

// Registry dispatches by resource kind.
type Registry struct {
	mu         sync.RWMutex
	strategies map[domain.ResourceKind]Strategy
}

func NewRegistry(strategies ...Strategy) (*Registry, error) {
	r := &Registry{strategies: make(map[domain.ResourceKind]Strategy)}
	for _, s := range strategies {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustNewRegistry panics when a strategy cannot be registered.
func MustNewRegistry(strategies ...Strategy) *Registry {
	r, err := NewRegistry(strategies...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Register(strategy Strategy) error {
	if strategy == nil {
		return ErrStrategyRequired
	}
	kind := strategy.Kind()
	if strings.TrimSpace(kind.String()) == "" {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.strategies[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	r.strategies[kind] = strategy
	return nil
}

// Lookup returns the strategy registered for kind.
func (r *Registry) Lookup(kind domain.ResourceKind) (Strategy, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[kind]
	return s, ok
}

// Kinds lists registered kinds in stable order.
func (r *Registry) Kinds() []domain.ResourceKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ResourceKind, 0, len(r.strategies))
	for kind := range r.strategies {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
