package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/laptopfinder-backend/api/responses"
	"github.com/angelmondragon/laptopfinder-backend/internal/builder"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// CatalogRebuildFunc runs one catalog build and store mirror.
type CatalogRebuildFunc func(ctx context.Context) (builder.Report, error)

// AdminRebuildCatalog triggers a synchronous rebuild and returns its report.
// Concurrent calls queue behind the builder's own lock.
func AdminRebuildCatalog(rebuild CatalogRebuildFunc, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rebuild == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog builder unavailable"))
			return
		}

		report, err := rebuild(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog rebuild failed"))
			return
		}
		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"total":    report.Total,
				"scraped":  report.Scraped,
				"fallback": report.Fallback,
			})
			logg.Info(ctx, "catalog rebuilt on demand")
		}
		responses.WriteSuccess(w, report)
	}
}
