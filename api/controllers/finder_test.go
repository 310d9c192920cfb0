package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/laptopfinder-backend/internal/finder"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

func newFinderService(t *testing.T, store *memoryCatalog) finder.Service {
	t.Helper()
	svc, err := finder.NewService(store)
	if err != nil {
		t.Fatalf("finder.NewService: %v", err)
	}
	return svc
}

func TestFinderQueryReturnsFacetsAndChips(t *testing.T) {
	svc := newFinderService(t, newMemoryCatalog())
	req := httptest.NewRequest(http.MethodGet, "/api/finder?brand=HP&sort=price_asc&page_size=12", nil)
	resp := httptest.NewRecorder()

	FinderQuery(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var result finder.Result
	decodeData(t, resp, &result)
	if result.Total == 0 {
		t.Fatal("expected HP products in the seed catalog")
	}
	for i, item := range result.Items {
		if item.Brand != "HP" {
			t.Fatalf("item %d has brand %q", i, item.Brand)
		}
		if i > 0 && result.Items[i-1].Price > item.Price {
			t.Fatalf("items not sorted by ascending price")
		}
	}
	if len(result.Facets) == 0 {
		t.Fatal("expected facet options")
	}
	if len(result.Chips) != 1 || result.Chips[0].Key != "brand" {
		t.Fatalf("expected one brand chip, got %+v", result.Chips)
	}
}

func TestFinderQueryIgnoresGarbage(t *testing.T) {
	svc := newFinderService(t, newMemoryCatalog())
	req := httptest.NewRequest(http.MethodGet, "/api/finder?brand=Nokia&page=-4&sort=cheapest&ram=lots", nil)
	resp := httptest.NewRecorder()

	FinderQuery(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var result finder.Result
	decodeData(t, resp, &result)
	if len(result.Chips) != 0 {
		t.Fatalf("unknown values should not produce chips, got %+v", result.Chips)
	}
	if result.Pagination.Page != 1 {
		t.Fatalf("expected page 1, got %d", result.Pagination.Page)
	}
}

func TestFinderQueryStoreFailure(t *testing.T) {
	store := newMemoryCatalog()
	store.err = errors.New("db down")
	resp := httptest.NewRecorder()

	FinderQuery(newFinderService(t, store), testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/finder", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestProductDetail(t *testing.T) {
	svc := newFinderService(t, newMemoryCatalog())

	resp := httptest.NewRecorder()
	ProductDetail(svc, testLogger())(resp, withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/1", nil), "productId", "1"))
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var product struct {
		ID uint `json:"id"`
	}
	decodeData(t, resp, &product)
	if product.ID != 1 {
		t.Fatalf("expected product 1, got %d", product.ID)
	}

	resp = httptest.NewRecorder()
	ProductDetail(svc, testLogger())(resp, withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/9999", nil), "productId", "9999"))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if code := decodeError(t, resp).Error.Code; code != string(pkgerrors.CodeNotFound) {
		t.Fatalf("unexpected code %s", code)
	}

	resp = httptest.NewRecorder()
	ProductDetail(svc, testLogger())(resp, withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/abc", nil), "productId", "abc"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
