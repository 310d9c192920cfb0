package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/laptopfinder-backend/internal/listing"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

func newListingService(t *testing.T) listing.Service {
	t.Helper()
	svc, err := listing.NewService(newMemoryCatalog())
	if err != nil {
		t.Fatalf("listing.NewService: %v", err)
	}
	return svc
}

func TestListLaptopsAppliesPriceCap(t *testing.T) {
	svc := newListingService(t)
	req := httptest.NewRequest(http.MethodGet, "/api/laptops?use_case=all&max_price=1000", nil)
	resp := httptest.NewRecorder()

	ListLaptops(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var items []listing.Summary
	decodeData(t, resp, &items)
	if len(items) == 0 {
		t.Fatal("expected seed laptops under the cap")
	}
	for _, item := range items {
		if item.Price > 1000 {
			t.Fatalf("%s costs %d, above the cap", item.Name, item.Price)
		}
	}
}

func TestListLaptopsRejectsBadMaxPrice(t *testing.T) {
	svc := newListingService(t)
	for _, raw := range []string{"cheap", "-5", "12.5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/laptops?max_price="+raw, nil)
		resp := httptest.NewRecorder()

		ListLaptops(svc, testLogger())(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("max_price=%s: expected 400, got %d", raw, resp.Code)
		}
		if code := decodeError(t, resp).Error.Code; code != string(pkgerrors.CodeValidation) {
			t.Fatalf("max_price=%s: unexpected code %s", raw, code)
		}
	}
}
