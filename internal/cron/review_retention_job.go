package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// ReviewRetentionJobName is the registry name of the rejected review purge.
const ReviewRetentionJobName = "review-retention"

const reviewRetentionDays = 30

type ReviewRetentionJobParams struct {
	Logger    *logger.Logger
	Reviews   reviewPurger
	Retention int
}

type reviewPurger interface {
	PurgeRejected(ctx context.Context, olderThan time.Duration) (int64, error)
}

func NewReviewRetentionJob(params ReviewRetentionJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Reviews == nil {
		return nil, fmt.Errorf("reviews service required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = reviewRetentionDays
	}
	return &reviewRetentionJob{
		logg:      params.Logger,
		reviews:   params.Reviews,
		retention: retention,
	}, nil
}

type reviewRetentionJob struct {
	logg      *logger.Logger
	reviews   reviewPurger
	retention int
}

func (j *reviewRetentionJob) Name() string { return ReviewRetentionJobName }

func (j *reviewRetentionJob) Run(ctx context.Context) error {
	window := time.Duration(j.retention) * 24 * time.Hour
	deleted, err := j.reviews.PurgeRejected(ctx, window)
	if err != nil {
		return fmt.Errorf("review retention: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"retention_days": j.retention,
		"rows_deleted":   deleted,
	})
	j.logg.Info(logCtx, "review retention complete")
	return nil
}
