package cron

import (
	"context"
	"fmt"

	"github.com/angelmondragon/laptopfinder-backend/internal/builder"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// CatalogRefreshJobName is the registry name of the rebuild job.
const CatalogRefreshJobName = "catalog-refresh"

type CatalogRefreshJobParams struct {
	Logger *logger.Logger
	Build  builder.InitializeParams
}

// NewCatalogRefreshJob rebuilds the catalog from the configured sources and
// mirrors it into the store.
func NewCatalogRefreshJob(params CatalogRefreshJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Build.Store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	if params.Build.Builder == nil {
		return nil, fmt.Errorf("catalog builder required")
	}
	return &catalogRefreshJob{
		logg:       params.Logger,
		params:     params.Build,
		initialize: builder.Initialize,
	}, nil
}

type catalogRefreshJob struct {
	logg       *logger.Logger
	params     builder.InitializeParams
	initialize func(context.Context, builder.InitializeParams) (builder.Report, error)
}

func (j *catalogRefreshJob) Name() string { return CatalogRefreshJobName }

func (j *catalogRefreshJob) Run(ctx context.Context) error {
	report, err := j.initialize(ctx, j.params)
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"sources":        len(report.Sources),
		"scraped":        report.Scraped,
		"curated":        report.Curated,
		"configured":     report.Configured,
		"total":          report.Total,
		"fallback":       report.Fallback,
		"detail_cached":  report.DetailCached,
		"detail_fetched": report.DetailFetched,
		"duration_ms":    report.Duration.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("catalog refresh: %w", err)
	}
	if report.SnapshotError != "" {
		j.logg.Warn(j.logg.WithField(logCtx, "snapshot_error", report.SnapshotError), "catalog snapshot not persisted")
	}
	j.logg.Info(logCtx, "catalog refresh complete")
	return nil
}
