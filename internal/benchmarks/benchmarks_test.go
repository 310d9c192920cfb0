package benchmarks

import (
	"reflect"
	"testing"

	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

func TestLookupAll(t *testing.T) {
	all, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(all))
	}
	for name, rows := range all {
		for i := 1; i < len(rows); i++ {
			if rows[i-1].Score < rows[i].Score {
				t.Fatalf("%s rows not sorted by score: %+v", name, rows)
			}
		}
	}
}

func TestLookupSingleCategory(t *testing.T) {
	got, err := Lookup(" CPU ")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	rows, ok := got[CategoryCPU]
	if !ok || len(got) != 1 {
		t.Fatalf("expected only the cpu table, got %v", got)
	}
	if rows[0].Name != "Intel Core Ultra 9 275HX" {
		t.Fatalf("expected the fastest cpu first, got %q", rows[0].Name)
	}
	if tables[CategoryCPU][0].Name != "Ryzen 7 7840HS" {
		t.Fatal("lookup must not reorder the source table")
	}
}

func TestLookupUnknownCategory(t *testing.T) {
	_, err := Lookup("npu")
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := pkgerrors.As(err).Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", pkgerrors.As(err).Details())
	}
	if !reflect.DeepEqual(details["valid_categories"], []string{"cpu", "gpu", "games"}) {
		t.Fatalf("unexpected valid categories %v", details["valid_categories"])
	}
}
