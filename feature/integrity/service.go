package integrity

import (
	"context"

	"armory/core/storage"
	"armory/feature/bones"
	"armory/feature/equipment"
	"armory/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	catalog equipment.CatalogSource
	aliases []bones.AliasFamily
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. db may be nil.
func NewService(catalog equipment.CatalogSource, aliases []bones.AliasFamily, client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	if aliases == nil {
		aliases = bones.DefaultAliases()
	}
	return &Service{
		catalog: catalog,
		aliases: aliases,
		client:  client,
		bucket:  bucket,
		logger:  logger,
		db:      db,
	}
}

// CheckCatalog validates the active catalog.
func (s *Service) CheckCatalog(ctx context.Context) *checks.CatalogReport {
	return checks.CheckCatalog(ctx, s.catalog, s.aliases)
}

// CheckAssets verifies that every catalog mesh exists in storage.
func (s *Service) CheckAssets(ctx context.Context) (*checks.AssetReport, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckAssets(ctx, s.client, s.bucket, catalog)
}

// CheckServer verifies the session table schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}

// CheckAll runs every check. Failed checks are reported inline.
func (s *Service) CheckAll(ctx context.Context) map[string]interface{} {
	report := make(map[string]interface{})

	report["catalog"] = s.CheckCatalog(ctx)

	if assets, err := s.CheckAssets(ctx); err != nil {
		report["assets"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["assets"] = assets
	}

	if srv, err := s.CheckServer(); err != nil {
		report["server"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srv
	}

	return report
}
