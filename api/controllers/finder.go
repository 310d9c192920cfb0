package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/laptopfinder-backend/api/responses"
	"github.com/angelmondragon/laptopfinder-backend/api/validators"
	"github.com/angelmondragon/laptopfinder-backend/internal/finder"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

// FinderQuery runs the faceted search. Unknown or malformed parameters are
// dropped during normalization rather than rejected.
func FinderQuery(svc finder.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finder service unavailable"))
			return
		}

		result, err := svc.Query(r.Context(), finder.ParseSelection(r.URL.Query()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ProductDetail returns a single catalog product.
func ProductDetail(svc finder.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "finder service unavailable"))
			return
		}

		id, err := validators.ParsePathID(chi.URLParam(r, "productId"), "product id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Product(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
