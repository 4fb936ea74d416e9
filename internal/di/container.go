package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	translationcmd "github.com/goliatone/go-cms-autotranslate/internal/commands/translations"
	"github.com/goliatone/go-cms-autotranslate/internal/content"
	adminhttp "github.com/goliatone/go-cms-autotranslate/internal/http"
	"github.com/goliatone/go-cms-autotranslate/internal/i18n"
	"github.com/goliatone/go-cms-autotranslate/internal/identity"
	"github.com/goliatone/go-cms-autotranslate/internal/interceptor"
	"github.com/goliatone/go-cms-autotranslate/internal/logging"
	"github.com/goliatone/go-cms-autotranslate/internal/logging/console"
	"github.com/goliatone/go-cms-autotranslate/internal/logging/gologger"
	"github.com/goliatone/go-cms-autotranslate/internal/runtimeconfig"
	"github.com/goliatone/go-cms-autotranslate/internal/storage"
	"github.com/goliatone/go-cms-autotranslate/internal/taxonomy"
	"github.com/goliatone/go-cms-autotranslate/internal/translations"
	"github.com/goliatone/go-cms-autotranslate/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires config, storage, repositories, logging and the
// interceptor.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer

	bunDB  *bun.DB
	ownsDB bool

	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	nodeRepo            content.NodeRepository
	nodeTranslationRepo content.NodeTranslationRepository
	termRepo            taxonomy.TermRepository
	termTranslationRepo taxonomy.TermTranslationRepository
	localeRepo          i18n.LocaleRepository

	locales         i18n.DefaultLocaleProvider
	extraStrategies []translations.Strategy
	registry        *translations.Registry
	errorHandler    interceptor.ErrorHandler
	interceptor     *interceptor.Interceptor

	commandRegistry translationcmd.CommandRegistry
	commands        *translationcmd.HandlerSet

	adminAPI *adminhttp.AdminAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies an open database. The container does not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the cache service used by the Bun entity repositories.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithLogWriter redirects the console provider output.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		c.logWriter = w
	}
}

// WithDefaultLocaleProvider overrides the provider derived from Config.I18N.
func WithDefaultLocaleProvider(provider i18n.DefaultLocaleProvider) Option {
	return func(c *Container) {
		c.locales = provider
	}
}

// WithStrategy registers an additional resource-kind strategy.
func WithStrategy(strategy translations.Strategy) Option {
	return func(c *Container) {
		if strategy != nil {
			c.extraStrategies = append(c.extraStrategies, strategy)
		}
	}
}

// WithErrorHandler overrides the middleware error handler.
func WithErrorHandler(handler interceptor.ErrorHandler) Option {
	return func(c *Container) {
		c.errorHandler = handler
	}
}

// WithCommandRegistry registers the translation command handlers with a
// go-command compatible registry.
func WithCommandRegistry(registry translationcmd.CommandRegistry) Option {
	return func(c *Container) {
		c.commandRegistry = registry
	}
}

// NewContainer validates cfg and builds every dependency. Opening the
// database and seeding locales happen here, bounded by ctx.
func NewContainer(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cfg.Cache.DefaultTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogger(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(ctx); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	if err := c.seedLocales(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	c.configureLocaleProvider()
	if err := c.configureInterceptor(); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		_ = c.Close()
		return nil, err
	}
	c.configureAdminAPI()
	return c, nil
}

func (c *Container) configureLogger() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{Writer: c.logWriter}
		if level, ok := console.ParseLevel(c.Config.Logging.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureStorage(ctx context.Context) error {
	if c.bunDB == nil && strings.EqualFold(strings.TrimSpace(c.Config.Storage.Provider), "bun") {
		db, err := storage.Open(ctx, c.Config.Storage, logging.StorageLogger(c.loggerProvider))
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if c.bunDB == nil {
		return nil
	}
	if err := storage.EnsureSchema(ctx, c.bunDB); err != nil {
		_ = c.Close()
		return err
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled || c.bunDB == nil {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			logging.StorageLogger(c.loggerProvider).Warn("cache.disabled", "error", err)
			return
		}
		c.cacheService = service
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

// configureRepositories picks Bun repositories when a database is present
// and in-memory ones otherwise. Translation lookups are never cached.
func (c *Container) configureRepositories() {
	if c.bunDB != nil {
		c.nodeRepo = content.NewBunNodeRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.nodeTranslationRepo = content.NewBunNodeTranslationRepository(c.bunDB)
		c.termRepo = taxonomy.NewBunTermRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		c.termTranslationRepo = taxonomy.NewBunTermTranslationRepository(c.bunDB)
		c.localeRepo = i18n.NewBunLocaleRepository(c.bunDB)
		return
	}
	c.nodeRepo = content.NewMemoryNodeRepository()
	c.nodeTranslationRepo = content.NewMemoryNodeTranslationRepository()
	c.termRepo = taxonomy.NewMemoryTermRepository()
	c.termTranslationRepo = taxonomy.NewMemoryTermTranslationRepository()
	c.localeRepo = i18n.NewMemoryLocaleRepository()
}

// seedLocales inserts Config.I18N.Locales that are not stored yet, keeping
// the configured spelling, then makes Config.DefaultLocale the only row
// flagged is_default.
func (c *Container) seedLocales(ctx context.Context) error {
	if !c.Config.I18N.LocaleTable || c.localeRepo == nil {
		return nil
	}

	defaultCode := strings.TrimSpace(c.Config.DefaultLocale)
	codes := append([]string{defaultCode}, c.Config.I18N.Locales...)

	logger := logging.I18NLogger(c.loggerProvider)
	seen := map[string]struct{}{}
	for _, raw := range codes {
		code := strings.TrimSpace(raw)
		key := strings.ToLower(code)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		if _, err := c.localeRepo.GetByCode(ctx, code); err == nil {
			continue
		} else if !errors.Is(err, i18n.ErrLocaleNotFound) {
			return fmt.Errorf("di: lookup locale %q: %w", code, err)
		}
		if _, err := c.localeRepo.Create(ctx, &i18n.Locale{
			ID:       identity.LocaleUUID(code),
			Code:     code,
			Display:  code,
			IsActive: true,
		}); err != nil {
			return fmt.Errorf("di: seed locale %q: %w", code, err)
		}
		logger.Debug("locale.seeded", "locale", code)
	}

	if err := c.localeRepo.SetDefault(ctx, defaultCode); err != nil {
		return fmt.Errorf("di: set default locale %q: %w", defaultCode, err)
	}
	logger.Debug("locale.default.set", "locale", defaultCode)
	return nil
}

func (c *Container) configureLocaleProvider() {
	if c.locales != nil {
		return
	}
	if c.Config.I18N.LocaleTable {
		c.locales = i18n.NewRepositoryProvider(c.localeRepo, c.Config.DefaultLocale,
			i18n.WithLogger(logging.I18NLogger(c.loggerProvider)))
		return
	}
	c.locales = i18n.StaticProvider(c.Config.DefaultLocale)
}

func (c *Container) configureInterceptor() error {
	nodeStrategy, err := translations.NewNodeStrategy(c.nodeRepo, c.nodeTranslationRepo)
	if err != nil {
		return err
	}
	termStrategy, err := translations.NewTermStrategy(c.termRepo, c.termTranslationRepo)
	if err != nil {
		return err
	}
	strategies := append([]translations.Strategy{nodeStrategy, termStrategy}, c.extraStrategies...)
	registry, err := translations.NewRegistry(strategies...)
	if err != nil {
		return err
	}
	c.registry = registry

	opts := []interceptor.Option{
		interceptor.WithLogger(logging.InterceptorLogger(c.loggerProvider)),
		interceptor.WithMethods(c.Config.Interceptor.Methods...),
		interceptor.WithFormats(c.Config.Interceptor.Formats...),
		interceptor.WithFormatParam(c.Config.Interceptor.FormatParam),
	}
	if c.errorHandler != nil {
		opts = append(opts, interceptor.WithErrorHandler(c.errorHandler))
	}
	hook, err := interceptor.New(c.locales, c.registry, opts...)
	if err != nil {
		return err
	}
	c.interceptor = hook
	return nil
}

func (c *Container) configureCommands() error {
	set, err := translationcmd.RegisterCommands(c.commandRegistry, translationcmd.Dependencies{
		Ensurer: c.interceptor,
		Locales: c.locales,
		Nodes:   c.nodeRepo,
		Terms:   c.termRepo,
	}, c.loggerProvider)
	if err != nil {
		return err
	}
	c.commands = set
	return nil
}

func (c *Container) configureAdminAPI() {
	c.adminAPI = adminhttp.NewAdminAPI(
		adminhttp.WithNodeRepositories(c.nodeRepo, c.nodeTranslationRepo),
		adminhttp.WithTermRepositories(c.termRepo, c.termTranslationRepo),
		adminhttp.WithEnsureHandler(c.commands.Ensure),
		adminhttp.WithLogger(logging.AdminLogger(c.loggerProvider)),
	)
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	c.ownsDB = false
	return err
}

func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

func (c *Container) DB() *bun.DB { return c.bunDB }

func (c *Container) NodeRepository() content.NodeRepository { return c.nodeRepo }

func (c *Container) NodeTranslationRepository() content.NodeTranslationRepository {
	return c.nodeTranslationRepo
}

func (c *Container) TermRepository() taxonomy.TermRepository { return c.termRepo }

func (c *Container) TermTranslationRepository() taxonomy.TermTranslationRepository {
	return c.termTranslationRepo
}

func (c *Container) LocaleRepository() i18n.LocaleRepository { return c.localeRepo }

func (c *Container) DefaultLocaleProvider() i18n.DefaultLocaleProvider { return c.locales }

func (c *Container) Registry() *translations.Registry { return c.registry }

func (c *Container) Interceptor() *interceptor.Interceptor { return c.interceptor }

func (c *Container) Commands() *translationcmd.HandlerSet { return c.commands }

func (c *Container) AdminAPI() *adminhttp.AdminAPI { return c.adminAPI }
