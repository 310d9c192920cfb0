package reviews

import (
	"context"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/db/models"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
	"github.com/angelmondragon/laptopfinder-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for reviews.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	List(ctx context.Context, params listReviewsParams) ([]models.Review, *pagination.Cursor, error)
	UpdateStatus(ctx context.Context, id uint, status enums.ReviewStatus, now time.Time) (bool, error)
	DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a reviews repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

type listReviewsParams struct {
	Status    *enums.ReviewStatus
	ProductID *uint
	Limit     int
	Cursor    *pagination.Cursor
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *repositoryImpl) List(ctx context.Context, params listReviewsParams) ([]models.Review, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.db.WithContext(ctx).Model(&models.Review{})
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.Cursor != nil {
		query = query.Where("((created_at < ?) OR (created_at = ? AND id < ?))", params.Cursor.CreatedAt, params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&reviews).Error; err != nil {
		return nil, nil, err
	}

	if len(reviews) > normalized {
		reviews = reviews[:normalized]
		last := reviews[len(reviews)-1]
		return reviews, &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}, nil
	}
	return reviews, nil, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id uint, status enums.ReviewStatus, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"moderated_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteRejectedBefore removes rejected reviews moderated before cutoff.
func (r *repositoryImpl) DeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND moderated_at IS NOT NULL AND moderated_at < ?", enums.ReviewStatusRejected, cutoff).
		Delete(&models.Review{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
