package translations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/goliatone/go-cms-autotranslate/internal/identity"
)

// NodeStrategy handles content nodes. The translated label is the title.
type NodeStrategy struct {
	nodes        content.NodeRepository
	translations content.NodeTranslationRepository
}

func NewNodeStrategy(nodes content.NodeRepository, translations content.NodeTranslationRepository) (*NodeStrategy, error) {
	if nodes == nil || translations == nil {
		return nil, fmt.Errorf("%w: node", ErrRepositoryRequired)
	}
	return &NodeStrategy{nodes: nodes, translations: translations}, nil
}

func (s *NodeStrategy) Kind() domain.ResourceKind { return domain.ResourceNode }

func (s *NodeStrategy) LabelField() string { return "title" }

func (s *NodeStrategy) Load(ctx context.Context, id string) (*Entity, error) {
	node, err := s.nodes.GetByNID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, content.ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: node %q", ErrEntityNotFound, id)
		}
		return nil, err
	}
	return &Entity{
		Kind:  domain.ResourceNode,
		ID:    node.NID,
		Key:   node.ID,
		Label: node.Label(),
	}, nil
}

func (s *NodeStrategy) HasTranslation(ctx context.Context, entity *Entity, locale string) (bool, error) {
	return s.translations.Exists(ctx, entity.Key, locale)
}

func (s *NodeStrategy) AddTranslation(ctx context.Context, entity *Entity, locale, label string) error {
	_, err := s.translations.Create(ctx, &content.NodeTranslation{
		ID:     identity.TranslationUUID(string(domain.ResourceNode), entity.Key, locale),
		NodeID: entity.Key,
		Locale: locale,
		Title:  label,
	})
	if errors.Is(err, content.ErrTranslationExists) {
		return fmt.Errorf("%w: node %s/%s", ErrTranslationExists, entity.ID, locale)
	}
	return err
}
