package translationcmd

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-cms-autotranslate/internal/commands"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/domain"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

const seedEntityMessageType = "autotranslate.entity.seed"

// SeedEntityCommand stores a node or taxonomy term in its default language.
// Bundle is the node type or the term vocabulary.
type SeedEntityCommand struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	Bundle   string `json:"bundle"`
	Label    string `json:"label"`
	Locale   string `json:"locale"`
}

func (SeedEntityCommand) Type() string { return seedEntityMessageType }

func (m SeedEntityCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Kind, validation.Required, validation.By(func(value any) error {
			raw, _ := value.(string)
			if _, ok := domain.ParseResourceKind(raw); !ok {
				return validation.NewError("autotranslate.entity.seed.kind_invalid", "kind must be node or taxonomy_term")
			}
			return nil
		})),
		validation.Field(&m.EntityID, validation.Required),
		validation.Field(&m.Label, validation.Required),
		validation.Field(&m.Locale, validation.Required),
	)
}

// SeedEntityHandler writes seed records through the entity repositories.
type SeedEntityHandler struct {
	inner *commands.Handler[SeedEntityCommand]
}

func NewSeedEntityHandler(nodes content.NodeRepository, terms taxonomy.TermRepository, logger interfaces.Logger, opts ...commands.HandlerOption[SeedEntityCommand]) *SeedEntityHandler {
	exec := func(ctx context.Context, msg SeedEntityCommand) error {
		kind, _ := domain.ParseResourceKind(msg.Kind)
		bundle := strings.TrimSpace(msg.Bundle)
		switch kind {
		case domain.ResourceNode:
			if nodes == nil {
				return fmt.Errorf("seed: node repository not configured")
			}
			if bundle == "" {
				bundle = "page"
			}
			_, err := nodes.Create(ctx, content.NewNode(msg.EntityID, bundle, msg.Label, msg.Locale))
			return err
		case domain.ResourceTaxonomyTerm:
			if terms == nil {
				return fmt.Errorf("seed: term repository not configured")
			}
			if bundle == "" {
				bundle = "tags"
			}
			_, err := terms.Create(ctx, taxonomy.NewTerm(msg.EntityID, bundle, msg.Label, msg.Locale))
			return err
		default:
			return fmt.Errorf("seed: unsupported kind %q", msg.Kind)
		}
	}

	handlerOpts := []commands.HandlerOption[SeedEntityCommand]{
		commands.WithLogger[SeedEntityCommand](logger),
		commands.WithOperation[SeedEntityCommand]("entity.seed"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SeedEntityHandler{
		inner: commands.NewHandler[SeedEntityCommand](exec, handlerOpts...),
	}
}

func (h *SeedEntityHandler) Execute(ctx context.Context, msg SeedEntityCommand) error {
	return h.inner.Execute(ctx, msg)
}
