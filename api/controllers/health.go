package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/api/responses"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

const (
	envHeader    = "X-LaptopFinder-Env"
	readyTimeout = 2 * time.Second
)

// CatalogCounter reports the number of stored products.
type CatalogCounter interface {
	Count(ctx context.Context) (int64, error)
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, redis. The catalog
// size is reported so an empty store is visible before traffic arrives.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP db.Pinger, store CatalogCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		payload := map[string]any{"status": "ready"}
		if store != nil {
			count, err := store.Count(ctx)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog unavailable"))
				return
			}
			payload["catalog_products"] = count
		}
		responses.WriteSuccess(w, payload)
	}
}
