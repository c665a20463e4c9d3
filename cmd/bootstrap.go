package cmd

import (
	"context"
	"fmt"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/config"
	"github.com/jjenkins/resume/internal/logging"
	"github.com/jjenkins/resume/internal/service"
	"github.com/jjenkins/resume/internal/store"
	"go.uber.org/zap"
)

// app bundles the dependencies shared by every command
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	resume  *service.ResumeService
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	matcher, err := service.NewMatcher(cfg.MatchMode)
	if err != nil {
		return nil, err
	}

	client := service.NewLodestoneClient(service.ClientOptions{
		BaseURL:       cfg.LodestoneBaseURL,
		Timeout:       cfg.FetchTimeout,
		MaxRetries:    cfg.FetchMaxRetries,
		RatePerSecond: cfg.FetchRatePerSecond,
	}, logger)

	svc := service.NewResumeService(
		client,
		service.NewExtractor(logger),
		service.NewComposer(cat, matcher),
		logger,
	)

	return &app{cfg: cfg, logger: logger, catalog: cat, resume: svc}, nil
}

// loadCatalog picks the catalog source: PostgreSQL, a YAML file, or the embedded data
func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	var (
		cat    *catalog.Catalog
		err    error
		source string
	)

	switch {
	case cfg.DatabaseURL != "":
		source = "database"
		db, dbErr := store.NewDB(cfg.DatabaseURL)
		if dbErr != nil {
			return nil, dbErr
		}
		defer db.Close()
		cat, err = store.NewCatalogStore(db).Load(ctx)
	case cfg.CatalogFile != "":
		source = cfg.CatalogFile
		cat, err = catalog.LoadFile(cfg.CatalogFile)
	default:
		source = "embedded"
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", source, err)
	}

	logger.Debug("catalog loaded", zap.String("source", source), zap.Int("achievements", cat.Len()))
	return cat, nil
}
