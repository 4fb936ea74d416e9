package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	autotranslate "github.com/goliatone/go-cms-autotranslate"
	"github.com/joho/godotenv"
)

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := autotranslate.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	module, err := autotranslate.New(ctx, cfg)
	if err != nil {
		log.Fatalf("initialise autotranslate: %v", err)
	}
	defer module.Close()

	if os.Getenv("EXAMPLE_SEED") != "false" {
		if err := seed(ctx, module, cfg.DefaultLocale); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	admin := http.NewServeMux()
	if err := module.RegisterAdminAPI(admin); err != nil {
		log.Fatalf("register admin api: %v", err)
	}

	addr := os.Getenv("EXAMPLE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           module.Middleware(newRouter(admin)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}

// newRouter mounts stand-in update endpoints. The interceptor runs before
// any of them, so by the time a handler executes the translation exists.
func newRouter(admin http.Handler) chi.Router {
	r := chi.NewRouter()

	update := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
	r.Patch("/node/{id}", update)
	r.Patch("/{lang}/node/{id}", update)
	r.Patch("/taxonomy/term/{id}", update)
	r.Patch("/{lang}/taxonomy/term/{id}", update)

	r.Mount("/admin/api", admin)
	return r
}

func seed(ctx context.Context, module *autotranslate.Module, locale string) error {
	records := []autotranslate.SeedEntityCommand{
		{Kind: "node", EntityID: "1", Bundle: "article", Label: "Welcome", Locale: locale},
		{Kind: "node", EntityID: "2", Bundle: "page", Label: "About us", Locale: locale},
		{Kind: "taxonomy_term", EntityID: "1", Bundle: "tags", Label: "News", Locale: locale},
	}
	for _, record := range records {
		if err := module.Seed(ctx, record); err != nil {
			return err
		}
	}
	return nil
}
