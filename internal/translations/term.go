package translations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/goliatone/go-cms-autotranslate/internal/identity"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
)

// TermStrategy handles taxonomy terms. The translated label is the name.
type TermStrategy struct {
	terms        taxonomy.TermRepository
	translations taxonomy.TermTranslationRepository
}

func NewTermStrategy(terms taxonomy.TermRepository, translations taxonomy.TermTranslationRepository) (*TermStrategy, error) {
	if terms == nil || translations == nil {
		return nil, fmt.Errorf("%w: taxonomy term", ErrRepositoryRequired)
	}
	return &TermStrategy{terms: terms, translations: translations}, nil
}

func (s *TermStrategy) Kind() domain.ResourceKind { return domain.ResourceTaxonomyTerm }

func (s *TermStrategy) LabelField() string { return "name" }

func (s *TermStrategy) Load(ctx context.Context, id string) (*Entity, error) {
	term, err := s.terms.GetByTID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, taxonomy.ErrTermNotFound) {
			return nil, fmt.Errorf("%w: term %q", ErrEntityNotFound, id)
		}
		return nil, err
	}
	return &Entity{
		Kind:  domain.ResourceTaxonomyTerm,
		ID:    term.TID,
		Key:   term.ID,
		Label: term.Label(),
	}, nil
}

func (s *TermStrategy) HasTranslation(ctx context.Context, entity *Entity, locale string) (bool, error) {
	return s.translations.Exists(ctx, entity.Key, locale)
}

func (s *TermStrategy) AddTranslation(ctx context.Context, entity *Entity, locale, label string) error {
	_, err := s.translations.Create(ctx, &taxonomy.TermTranslation{
		ID:     identity.TranslationUUID(string(domain.ResourceTaxonomyTerm), entity.Key, locale),
		TermID: entity.Key,
		Locale: locale,
		Name:   label,
	})
	if errors.Is(err, taxonomy.ErrTranslationExists) {
		return fmt.Errorf("%w: term %s/%s", ErrTranslationExists, entity.ID, locale)
	}
	return err
}
