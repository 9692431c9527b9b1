package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/auth"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/config"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/dsn"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/failure"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/settings"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/settings/shared"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/token"
)

// ErrConfigNil error if New receives no configuration.
var ErrConfigNil = errors.New("config cannot be nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg      *config.Config
	db       *gorm.DB
	failures *failure.Facade
	provider settings.ConfigurationProvider
	settings *settings.Facade
	tokens   *token.Facade
	auth     *auth.Facade
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.AccessToken{},
		&models.Configuration{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	failures := failure.New(cfg.Log.DataDog)

	tokens, err := token.NewFacade(db)
	if err != nil {
		return nil, err
	}

	provider, err := newProvider(cfg, db)
	if err != nil {
		return nil, err
	}

	store := settings.NewFacade(provider, failures)
	store.RegisterDomain(settings.NewDomain(shared.DomainLdap, shared.DefaultLdapSettings()))
	store.RegisterDomain(settings.NewDomain(shared.DomainRegistry, shared.DefaultRegistrySettings()))
	store.RegisterDomain(settings.NewDomain(shared.DomainStatistics, shared.DefaultStatisticsSettings()))

	if err = loadSharedConfiguration(store); err != nil {
		return nil, err
	}

	ldapRef, err := settings.DomainRef[shared.LdapSettings](store, shared.DomainLdap)
	if err != nil {
		return nil, err
	}

	chain := auth.NewFacade(
		auth.NewBasicAuthenticator(tokens),
		auth.NewLdapAuthenticator(ldapRef, tokens, failures),
	)

	return &Daemon{
		cfg:      cfg,
		db:       db,
		failures: failures,
		provider: provider,
		settings: store,
		tokens:   tokens,
		auth:     chain,
	}, nil
}

// openDatabase opens the database with the configured gorm driver.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineSQLite:
		dialector = sqlite.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Create(cfg))
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	default:
		return nil, config.ErrUnknownGormEngine
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

// newProvider creates the configured shared-configuration provider.
func newProvider(cfg *config.Config, db *gorm.DB) (settings.ConfigurationProvider, error) {
	switch cfg.Settings.Provider {
	case config.SettingsProviderFile:
		return settings.NewFileProvider(cfg.Settings.Path, cfg.Settings.ReadOnly), nil
	case config.SettingsProviderDatabase:
		return settings.NewDatabaseProvider(db, cfg.Settings.ReadOnly), nil
	default:
		return nil, config.ErrUnknownSettingsProvider
	}
}

// Run starts the Daemon and blocks until SIGINT or SIGTERM arrives.
func (d *Daemon) Run() error {
	if fileProvider, ok := d.provider.(*settings.FileProvider); ok && d.cfg.Settings.Watch {
		stop, err := fileProvider.Watch(d.settings.LoadFromDocument)
		if err != nil {
			return fmt.Errorf("failed to watch shared configuration: %w", err)
		}
		defer stop()

		log.Info().Str("path", d.cfg.Settings.Path).Msg("watching shared configuration for changes")
	}

	log.Info().Str("title", d.cfg.Title).Msg("daemon started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("daemon shutting down")

	return nil
}

// Tokens exposes the access token facade.
func (d *Daemon) Tokens() *token.Facade {
	return d.tokens
}

// Settings exposes the shared-configuration store.
func (d *Daemon) Settings() *settings.Facade {
	return d.settings
}

// Auth exposes the authenticator chain.
func (d *Daemon) Auth() *auth.Facade {
	return d.auth
}
