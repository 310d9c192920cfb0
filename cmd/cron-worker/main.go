package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/laptopfinder-backend/internal/builder"
	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/cron"
	"github.com/angelmondragon/laptopfinder-backend/internal/reviews"
	"github.com/angelmondragon/laptopfinder-backend/internal/snapshot"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/db"
	"github.com/angelmondragon/laptopfinder-backend/pkg/fetch"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
	"github.com/angelmondragon/laptopfinder-backend/pkg/metrics"
	"github.com/angelmondragon/laptopfinder-backend/pkg/migrate"
	"github.com/angelmondragon/laptopfinder-backend/pkg/redis"
)

func main() {
	runOnce := flag.String("run", "", "run a single job by name and exit")
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "cron-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "cron-worker"

	logg = logger.New(logger.Options{
		ServiceName: "cron-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	var lock cron.Lock = cron.NewLocalLock()
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		lock, err = cron.NewRedisLock(redisClient, redisClient.LockKey(cron.LockName), 0)
		if err != nil {
			logg.Error(context.Background(), "failed to create cron lock", err)
			os.Exit(1)
		}
	}

	snapshots, err := snapshot.New(cfg.Catalog, redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot store", err)
		os.Exit(1)
	}

	fetcher := fetch.New(cfg.Scrape, logg)
	catalogBuilder := builder.New(fetcher, builder.Options{
		Snapshots:        snapshots,
		Configurator:     builder.ConfiguratorLoader(cfg.Catalog, fetcher, logg),
		Metrics:          metrics.NewCatalogMetrics(prometheus.DefaultRegisterer),
		Logger:           logg,
		MaxDetailFetches: cfg.Scrape.MaxDetailFetches,
	})
	store := catalog.NewStore(dbClient)

	refreshJob, err := cron.NewCatalogRefreshJob(cron.CatalogRefreshJobParams{
		Logger: logg,
		Build:  builder.ParamsFromConfig(cfg.Catalog, store, catalogBuilder),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog refresh job", err)
		os.Exit(1)
	}

	reviewService, err := reviews.NewService(reviews.NewRepository(dbClient.DB()), store)
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}
	retentionJob, err := cron.NewReviewRetentionJob(cron.ReviewRetentionJobParams{
		Logger:    logg,
		Reviews:   reviewService,
		Retention: cfg.Reviews.RetentionDays,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create review retention job", err)
		os.Exit(1)
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(refreshJob, retentionJob),
		Lock:     lock,
		Metrics:  metrics.NewCronJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Catalog.RefreshInterval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})

	if *runOnce != "" {
		ran, err := service.RunNow(ctx, *runOnce)
		if err != nil {
			logg.Error(ctx, "job run failed", err)
			os.Exit(1)
		}
		if !ran {
			logg.Warn(ctx, "another cron instance holds the lock; job skipped")
		}
		return
	}

	logg.Info(ctx, "starting cron worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "cron worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "cron worker shutting down gracefully")
}
