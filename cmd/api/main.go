package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/laptopfinder-backend/api/controllers"
	"github.com/angelmondragon/laptopfinder-backend/api/middleware"
	"github.com/angelmondragon/laptopfinder-backend/api/routes"
	"github.com/angelmondragon/laptopfinder-backend/internal/builder"
	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/finder"
	"github.com/angelmondragon/laptopfinder-backend/internal/guide"
	"github.com/angelmondragon/laptopfinder-backend/internal/listing"
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

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
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

	var (
		redisClient *redis.Client
		redisPinger db.Pinger
		rateStore   middleware.RateLimiterStore
	)
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
		redisPinger = redisClient
		rateStore = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured; review rate limiting disabled")
	}

	snapshots, err := snapshot.New(cfg.Catalog, redisClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create snapshot store", err)
		os.Exit(1)
	}

	store := catalog.NewStore(dbClient)
	fetcher := fetch.New(cfg.Scrape, logg)
	catalogBuilder := builder.New(fetcher, builder.Options{
		Snapshots:        snapshots,
		Configurator:     builder.ConfiguratorLoader(cfg.Catalog, fetcher, logg),
		Metrics:          metrics.NewCatalogMetrics(prometheus.DefaultRegisterer),
		Logger:           logg,
		MaxDetailFetches: cfg.Scrape.MaxDetailFetches,
	})
	buildParams := builder.ParamsFromConfig(cfg.Catalog, store, catalogBuilder)
	rebuild := controllers.CatalogRebuildFunc(func(ctx context.Context) (builder.Report, error) {
		return builder.Initialize(ctx, buildParams)
	})

	if cfg.Catalog.BuildOnStart {
		report, err := rebuild(context.Background())
		if err != nil {
			logg.Error(context.Background(), "initial catalog build failed", err)
			os.Exit(1)
		}
		ctx := logg.WithFields(context.Background(), map[string]any{
			"total":    report.Total,
			"scraped":  report.Scraped,
			"fallback": report.Fallback,
		})
		logg.Info(ctx, "catalog seeded")
	}

	finderService, err := finder.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create finder service", err)
		os.Exit(1)
	}
	listingService, err := listing.NewService(store)
	if err != nil {
		logg.Error(context.Background(), "failed to create listing service", err)
		os.Exit(1)
	}
	reviewService, err := reviews.NewService(reviews.NewRepository(dbClient.DB()), store)
	if err != nil {
		logg.Error(context.Background(), "failed to create reviews service", err)
		os.Exit(1)
	}
	buyingGuide, err := guide.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load buying guide", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisPinger,
			rateStore,
			store,
			finderService,
			listingService,
			reviewService,
			buyingGuide,
			rebuild,
			prometheus.DefaultGatherer,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server shut down")
}
