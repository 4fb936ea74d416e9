package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	autotranslate "github.com/goliatone/go-cms-autotranslate"
	"github.com/joho/godotenv"
)

// moduleRunner is the subset of *autotranslate.Module used by the CLI.
type moduleRunner interface {
	Seed(ctx context.Context, cmd autotranslate.SeedEntityCommand) error
	EnsureTranslation(ctx context.Context, cmd autotranslate.EnsureTranslationCommand) error
	Close() error
}

var moduleBuilder = func(ctx context.Context) (moduleRunner, error) {
	_ = godotenv.Load()
	cfg, err := autotranslate.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return autotranslate.New(ctx, cfg)
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("translations: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: translations <seed|ensure> [flags]")
	}
	switch args[0] {
	case "seed":
		return runSeed(ctx, args[1:])
	case "ensure":
		return runEnsure(ctx, args[1:], out)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func runSeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("translations-seed", flag.ContinueOnError)
	kind := fs.String("kind", "node", "Resource kind (node or taxonomy_term)")
	id := fs.String("id", "", "Public entity id")
	bundle := fs.String("bundle", "", "Node type or term vocabulary")
	label := fs.String("label", "", "Title or name in the default language")
	locale := fs.String("locale", "en", "Default language of the entity")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	return module.Seed(ctx, autotranslate.SeedEntityCommand{
		Kind:     *kind,
		EntityID: *id,
		Bundle:   *bundle,
		Label:    *label,
		Locale:   *locale,
	})
}

func runEnsure(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("translations-ensure", flag.ContinueOnError)
	kind := fs.String("kind", "node", "Resource kind (node or taxonomy_term)")
	id := fs.String("id", "", "Public entity id")
	locale := fs.String("locale", "", "Target language (defaults to the site default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	var result autotranslate.EnsureResult
	if err := module.EnsureTranslation(ctx, autotranslate.EnsureTranslationCommand{
		Kind:     *kind,
		EntityID: *id,
		Locale:   *locale,
		Result:   &result,
	}); err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(map[string]any{
		"kind":      result.Target.Kind,
		"entity_id": result.Target.EntityID,
		"locale":    result.Target.Locale,
		"outcome":   result.Outcome,
	})
}
