package translationcmd

import (
	"errors"

	"github.com/goliatone/go-cms-autotranslate/internal/commands"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Dependencies are the services the translation command handlers call into.
type Dependencies struct {
	Ensurer Ensurer
	Locales i18n.DefaultLocaleProvider
	Nodes   content.NodeRepository
	Terms   taxonomy.TermRepository
}

// HandlerSet groups the handlers built by RegisterCommands.
type HandlerSet struct {
	Ensure *EnsureTranslationHandler
	Seed   *SeedEntityHandler
}

// RegisterCommands builds the translation command handlers and registers
// them when reg is non-nil.
func RegisterCommands(reg CommandRegistry, deps Dependencies, provider interfaces.LoggerProvider) (*HandlerSet, error) {
	if deps.Ensurer == nil {
		return nil, errors.New("translation command registration: ensurer is nil")
	}

	logger := commands.CommandLogger(provider, "translations")
	set := &HandlerSet{
		Ensure: NewEnsureTranslationHandler(deps.Ensurer, deps.Locales, logger),
		Seed:   NewSeedEntityHandler(deps.Nodes, deps.Terms, logger),
	}

	if reg != nil {
		if err := reg.RegisterCommand(set.Ensure); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(set.Seed); err != nil {
			return nil, err
		}
	}
	return set, nil
}
