package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

// memoryCatalog serves the fallback seed with sequential ids.
type memoryCatalog struct {
	products catalog.Catalog
	err      error
}

func newMemoryCatalog() *memoryCatalog {
	seed := catalog.FallbackSeed()
	for i := range seed {
		seed[i].ID = uint(i + 1)
	}
	return &memoryCatalog{products: seed}
}

func (m *memoryCatalog) FetchAll(context.Context) (catalog.Catalog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *memoryCatalog) FetchOne(_ context.Context, id uint) (catalog.Product, error) {
	if p, ok := m.products.ByID(id); ok {
		return p, nil
	}
	return catalog.Product{}, pkgerrors.NotFound("product", id)
}

func (m *memoryCatalog) Count(context.Context) (int64, error) {
	return int64(len(m.products)), m.err
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()
	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var envelope errorEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return envelope
}
