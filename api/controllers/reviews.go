package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/laptopfinder-backend/api/responses"
	"github.com/angelmondragon/laptopfinder-backend/api/validators"
	"github.com/angelmondragon/laptopfinder-backend/internal/reviews"
	"github.com/angelmondragon/laptopfinder-backend/pkg/db/models"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

const (
	defaultReviewLimit = 20
	maxReviewLimit     = 100
)

type createReviewRequest struct {
	ProductID  *uint  `json:"product_id,omitempty" validate:"omitempty,min=1"`
	AuthorName string `json:"author_name" validate:"required,max=80"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Title      string `json:"title" validate:"max=120"`
	Body       string `json:"body" validate:"required,max=2000"`
}

func (r createReviewRequest) toInput() reviews.CreateInput {
	return reviews.CreateInput{
		ProductID:  r.ProductID,
		AuthorName: validators.SanitizeString(r.AuthorName, 80),
		Rating:     r.Rating,
		Title:      validators.SanitizeString(r.Title, 120),
		Body:       validators.SanitizeString(r.Body, 2000),
	}
}

type reviewResponse struct {
	ID          uint               `json:"id"`
	ProductID   *uint              `json:"product_id,omitempty"`
	AuthorName  string             `json:"author_name"`
	Rating      int                `json:"rating"`
	Title       string             `json:"title"`
	Body        string             `json:"body"`
	Status      enums.ReviewStatus `json:"status"`
	ModeratedAt *time.Time         `json:"moderated_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type reviewListResponse struct {
	Items  []reviewResponse `json:"items"`
	Cursor string           `json:"cursor,omitempty"`
}

func toReviewResponse(m *models.Review) reviewResponse {
	return reviewResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		AuthorName:  m.AuthorName,
		Rating:      m.Rating,
		Title:       m.Title,
		Body:        m.Body,
		Status:      m.Status,
		ModeratedAt: m.ModeratedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func toReviewListResponse(result *reviews.ListResult) reviewListResponse {
	out := reviewListResponse{Items: make([]reviewResponse, 0, len(result.Items)), Cursor: result.Cursor}
	for i := range result.Items {
		out.Items = append(out.Items, toReviewResponse(&result.Items[i]))
	}
	return out
}

type moderateReviewRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// CreateReview accepts a submission. New reviews wait for moderation.
func CreateReview(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		var payload createReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toReviewResponse(review))
	}
}

// ListApprovedReviews is the public listing; only approved reviews are shown.
func ListApprovedReviews(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return listReviews(svc, logg, func(*http.Request) string { return string(enums.ReviewStatusApproved) })
}

// ListReviews is the moderation listing; status is taken from the query.
func ListReviews(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return listReviews(svc, logg, func(r *http.Request) string { return r.URL.Query().Get("status") })
}

func listReviews(svc reviews.Service, logg *logger.Logger, status func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultReviewLimit, 1, maxReviewLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := validators.ParseQueryID(r, "product_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), reviews.ListParams{
			Status:    status(r),
			ProductID: productID,
			Limit:     limit,
			Cursor:    r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toReviewListResponse(result))
	}
}

// ModerateReview moves a review to the requested status.
func ModerateReview(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "reviews service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "reviewId"), "review id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload moderateReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		status, err := enums.ParseReviewStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		review, err := svc.Moderate(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, toReviewResponse(review))
	}
}
