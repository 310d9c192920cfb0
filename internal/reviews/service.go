// Package reviews stores reader reviews and their moderation state.
package reviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/db/models"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service defines review submission, listing and moderation.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Review, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Moderate(ctx context.Context, id uint, status enums.ReviewStatus) (*models.Review, error)
	PurgeRejected(ctx context.Context, olderThan time.Duration) (int64, error)
}

// CreateInput is a validated submission.
type CreateInput struct {
	ProductID  *uint
	AuthorName string
	Rating     int
	Title      string
	Body       string
}

// ListParams filters and pages reviews. Empty Status lists every status.
type ListParams struct {
	Status    string
	ProductID *uint
	Limit     int
	Cursor    string
}

// ListResult wraps returned reviews and the cursor for the next page.
type ListResult struct {
	Items  []models.Review `json:"items"`
	Cursor string          `json:"cursor"`
}

type productReader interface {
	FetchOne(ctx context.Context, id uint) (catalog.Product, error)
}

type service struct {
	repo     Repository
	products productReader
	now      func() time.Time
}

// NewService wires review dependencies. products may be nil, in which case
// product ids are not checked.
func NewService(repo Repository, products productReader) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "reviews repository required")
	}
	return &service{repo: repo, products: products, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	author := strings.TrimSpace(input.AuthorName)
	title := strings.TrimSpace(input.Title)
	body := strings.TrimSpace(input.Body)
	if author == "" || title == "" || body == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "author_name, title and body are required")
	}

	if input.ProductID != nil && s.products != nil {
		if _, err := s.products.FetchOne(ctx, *input.ProductID); err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product").
					WithDetails(map[string]any{"product_id": *input.ProductID})
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
	}

	now := s.now().UTC()
	review := &models.Review{
		ProductID:  input.ProductID,
		AuthorName: author,
		Rating:     input.Rating,
		Title:      title,
		Body:       body,
		Status:     enums.ReviewStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create review")
	}
	return review, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := listReviewsParams{
		ProductID: params.ProductID,
		Limit:     params.Limit,
	}
	if strings.TrimSpace(params.Status) != "" {
		status, err := enums.ParseReviewStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		query.Status = &status
	}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, next, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &ListResult{Items: rows, Cursor: cursor}, nil
}

func (s *service) Moderate(ctx context.Context, id uint, status enums.ReviewStatus) (*models.Review, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, s.now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update review status")
	}
	if !updated {
		return nil, pkgerrors.NotFound("review", id)
	}

	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("review", id)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load review")
	}
	return review, nil
}

// PurgeRejected deletes rejected reviews moderated more than olderThan ago.
func (s *service) PurgeRejected(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "retention must be positive")
	}
	deleted, err := s.repo.DeleteRejectedBefore(ctx, s.now().UTC().Add(-olderThan))
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "purge rejected reviews")
	}
	return deleted, nil
}
