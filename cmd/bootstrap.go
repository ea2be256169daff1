package cmd

import (
	"context"
	"fmt"

	"bulk-seeder/core/config"
	"bulk-seeder/core/logger"
	"bulk-seeder/core/plan"
	"bulk-seeder/core/repository"
	"bulk-seeder/core/seed"
	"bulk-seeder/core/source"
	"bulk-seeder/core/storage"
	"bulk-seeder/core/validate"
	"bulk-seeder/feature/seeding"

	"go.uber.org/zap"
)

// seeder holds everything a command needs to seed or check a plan.
type seeder struct {
	cfg      *config.Config
	logger   *zap.Logger
	plan     *plan.Plan
	registry *repository.Registry
	store    storage.Client
	service  *seeding.Service
}

// bootstrap loads configuration and the plan, opens the connections used by
// the plan and builds the seeding service.
func bootstrap(ctx context.Context, uploadReport bool) (*seeder, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if planFlag != "" {
		cfg.Seed.Plan = planFlag
	}
	if prodFlag {
		cfg.Seed.Production = true
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	p, err := plan.Load(cfg.Seed.Plan)
	if err != nil {
		return nil, err
	}
	logg.Info("Plan loaded",
		zap.String("plan", cfg.Seed.Plan),
		zap.Int("units", len(p.Units)),
		zap.Bool("production", cfg.Seed.Production),
	)

	rt := &seeder{cfg: cfg, logger: logg, plan: p}

	if cfg.Seed.Source == seed.SourceBucket || uploadReport {
		rt.store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := storage.CheckBucket(ctx, rt.store, cfg.Storage.Bucket); err != nil {
			if cfg.Seed.Source == seed.SourceBucket {
				return nil, err
			}
			logg.Warn("Report bucket unavailable", zap.Error(err))
		}
	}

	var src seed.Source
	switch cfg.Seed.Source {
	case seed.SourceFile, "":
		src = source.NewFileSource(p.Dir)
	case seed.SourceBucket:
		src = source.NewBucketSource(rt.store, cfg.Storage.Bucket, cfg.Seed.Prefix)
	default:
		return nil, fmt.Errorf("unsupported seed source %q", cfg.Seed.Source)
	}

	// Only connections referenced by a unit are opened. A connection that
	// fails to open stays unregistered and its units fail individually.
	configs := p.ConnectionConfigs(cfg.Database)
	used := p.UsedConnections()
	for name := range configs {
		if !used[name] {
			delete(configs, name)
		}
	}
	var failed map[string]error
	rt.registry, failed = repository.OpenAll(ctx, configs)
	for name, err := range failed {
		logg.Warn("Connection unavailable", zap.String("connection", name), zap.Error(err))
	}

	opts := cfg.Seed.Options()
	engine := seed.NewEngine(src, validate.New(), rt.registry, logg, opts)
	checker := seeding.NewChecker(src, validate.New(), rt.registry, opts.MarkerField, logg)
	rt.service = seeding.NewService(engine, checker, p.Units, cfg.Seed.Production, logg)
	if uploadReport {
		rt.service.EnableReportUpload(rt.store, cfg.Storage.Bucket)
	}

	return rt, nil
}

// Close releases the database connections and flushes the logger.
func (rt *seeder) Close(ctx context.Context) {
	if err := rt.registry.Close(ctx); err != nil {
		rt.logger.Warn("Failed to close connections", zap.Error(err))
	}
	_ = rt.logger.Sync()
}
