package controllers

import (
	"net/http"

	"github.com/angelmondragon/laptopfinder-backend/api/responses"
	"github.com/angelmondragon/laptopfinder-backend/internal/benchmarks"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

func Benchmarks(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := benchmarks.Lookup(r.URL.Query().Get("category"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tables)
	}
}
