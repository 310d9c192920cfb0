package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/laptopfinder-backend/internal/benchmarks"
)

func TestBenchmarksByCategory(t *testing.T) {
	resp := httptest.NewRecorder()
	Benchmarks(testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/benchmarks?category=GPU", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	var tables map[string][]benchmarks.Row
	decodeData(t, resp, &tables)
	rows := tables[benchmarks.CategoryGPU]
	if len(tables) != 1 || len(rows) == 0 {
		t.Fatalf("expected only the gpu table, got %v", tables)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Score < rows[i].Score {
			t.Fatal("rows should be sorted by score descending")
		}
	}
}

func TestBenchmarksUnknownCategoryListsValidOnes(t *testing.T) {
	resp := httptest.NewRecorder()
	Benchmarks(testLogger())(resp, httptest.NewRequest(http.MethodGet, "/api/benchmarks?category=ssd", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	envelope := decodeError(t, resp)
	valid, ok := envelope.Error.Details["valid_categories"].([]any)
	if !ok || len(valid) != len(benchmarks.Categories()) {
		t.Fatalf("expected valid_categories in details, got %v", envelope.Error.Details)
	}
}
