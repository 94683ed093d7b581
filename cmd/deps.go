package cmd

import (
	"fmt"

	"armory/core/config"
	"armory/core/database"
	"armory/core/logger"
	"armory/core/storage"
	"armory/feature/equipment"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles the dependencies shared by the commands.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  storage.Client
	db      *gorm.DB
	catalog equipment.CatalogSource
}

// newDeps loads configuration and the logger.
func newDeps() (*deps, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &deps{cfg: cfg, logger: logg}, nil
}

// withStorage creates the storage client and the configured catalog source.
func (d *deps) withStorage() error {
	client, err := storage.NewClient(d.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	d.client = client

	src, err := equipment.NewCatalogSource(d.cfg.Catalog, client, d.cfg.Storage.Bucket, d.logger)
	if err != nil {
		return err
	}
	d.catalog = src
	return nil
}

// withDatabase connects the optional database. A failure is logged and
// leaves db nil.
func (d *deps) withDatabase() {
	conn, err := database.Connect(d.cfg.Database)
	if err != nil {
		d.logger.Warn("Optional database connection failed", zap.String("target", d.cfg.Database.Target()), zap.Error(err))
		return
	}
	d.db = conn
	d.logger.Info("Connected to database", zap.String("target", d.cfg.Database.Target()))
}

// sessionStore returns the session store, or nil when sessions stay in memory.
func (d *deps) sessionStore() (equipment.Store, error) {
	if d.db == nil || !d.cfg.Session.Persist {
		return nil, nil
	}
	store := equipment.NewGormStore(d.db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}
