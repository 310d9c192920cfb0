package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/laptopfinder-backend/api/responses"
	"github.com/angelmondragon/laptopfinder-backend/internal/guide"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

func GuideAll(g *guide.Guide, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if g == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "guide unavailable"))
			return
		}
		responses.WriteSuccess(w, g.All())
	}
}

func GuideSection(g *guide.Guide, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if g == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "guide unavailable"))
			return
		}
		section, err := g.Section(chi.URLParam(r, "section"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, section)
	}
}
