package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/runtimeconfig"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/pkg/testsupport"
	"github.com/uptrace/bun/dialect"
)

func testStorageConfig(t *testing.T) runtimeconfig.StorageConfig {
	t.Helper()
	return runtimeconfig.StorageConfig{
		Provider: "bun",
		Driver:   "sqlite",
		DSN:      testsupport.SQLiteMemoryDSN(t),
	}
}

func TestOpenAndEnsureSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, testStorageConfig(t), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema is not idempotent: %v", err)
	}

	nodes := content.NewBunNodeRepository(db)
	node, err := nodes.Create(ctx, content.NewNode("1", "page", "About", "en"))
	if err != nil {
		t.Fatalf("create node: %v", err)
	}

	translations := content.NewBunNodeTranslationRepository(db)
	if _, err := translations.Create(ctx, &content.NodeTranslation{NodeID: node.ID, Locale: "de", Title: "About"}); err != nil {
		t.Fatalf("create translation: %v", err)
	}
	_, err = translations.Create(ctx, &content.NodeTranslation{NodeID: node.ID, Locale: "de", Title: "Über"})
	if !errors.Is(err, content.ErrTranslationExists) {
		t.Fatalf("expected composite unique constraint to reject duplicate, got %v", err)
	}

	terms := taxonomy.NewBunTermRepository(db)
	if _, err := terms.Create(ctx, taxonomy.NewTerm("3", "tags", "News", "en")); err != nil {
		t.Fatalf("create term: %v", err)
	}
}

func TestOpen_WithQueryLogger(t *testing.T) {
	cfg := testStorageConfig(t)
	cfg.Debug = true
	db, err := Open(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(context.Background(), runtimeconfig.StorageConfig{Driver: "sqlite"}, nil); !errors.Is(err, ErrDSNRequired) {
		t.Fatalf("expected ErrDSNRequired, got %v", err)
	}
	if _, err := Open(context.Background(), runtimeconfig.StorageConfig{Driver: "oracle", DSN: "x"}, nil); !errors.Is(err, ErrDriverUnsupported) {
		t.Fatalf("expected ErrDriverUnsupported, got %v", err)
	}
}

func TestResolveDriver(t *testing.T) {
	cases := []struct {
		driver  string
		name    string
		dialect dialect.Name
	}{
		{driver: "", name: "sqlite3", dialect: dialect.SQLite},
		{driver: "SQLite3", name: "sqlite3", dialect: dialect.SQLite},
		{driver: "postgres", name: "pgx", dialect: dialect.PG},
		{driver: "pgx", name: "pgx", dialect: dialect.PG},
	}
	for _, tc := range cases {
		name, d, err := resolveDriver(tc.driver)
		if err != nil {
			t.Fatalf("%q: %v", tc.driver, err)
		}
		if name != tc.name || d.Name() != tc.dialect {
			t.Fatalf("%q: expected %s/%s, got %s/%s", tc.driver, tc.name, tc.dialect, name, d.Name())
		}
	}
}
