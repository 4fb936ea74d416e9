package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-cms-autotranslate/internal/content"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/internal/runtimeconfig"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

var (
	ErrDriverUnsupported = errors.New("storage: driver not supported")
	ErrDSNRequired       = errors.New("storage: dsn required")
)

// Open connects to the configured database and returns a Bun handle. The
// connection is verified with a ping before returning.
func Open(ctx context.Context, cfg runtimeconfig.StorageConfig, logger interfaces.Logger) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, ErrDSNRequired
	}

	driverName, dialect, err := resolveDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", driverName, err)
	}
	if driverName == "sqlite3" && isSQLiteMemory(dsn) {
		// each connection to an unnamed memory db sees its own database
		sqlDB.SetMaxOpenConns(1)
	}

	db := bun.NewDB(sqlDB, dialect)
	if logger == nil {
		logger = logging.NoOp()
	}
	if cfg.Debug {
		db.AddQueryHook(NewQueryLogger(logger))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", driverName, err)
	}

	logger.Debug("storage.opened", "driver", driverName, "dialect", dialect.Name().String())
	return db, nil
}

func resolveDriver(driver string) (string, schema.Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return "sqlite3", sqlitedialect.New(), nil
	case "postgres", "pgx":
		return "pgx", pgdialect.New(), nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrDriverUnsupported, driver)
	}
}

func isSQLiteMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Models lists every table owned by the module in creation order.
func Models() []any {
	return []any{
		(*i18n.Locale)(nil),
		(*content.Node)(nil),
		(*content.NodeTranslation)(nil),
		(*taxonomy.Term)(nil),
		(*taxonomy.TermTranslation)(nil),
	}
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return errors.New("storage: database required")
	}
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table for %T: %w", model, err)
		}
	}
	return nil
}
