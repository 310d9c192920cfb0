package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

type reviewBody struct {
	AuthorName string `json:"author_name" validate:"required,max=10"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"author_name":"Asha","rating":4}`))
	var body reviewBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.AuthorName != "Asha" || body.Rating != 4 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":9}`))
	var body reviewBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["author_name"] != "is required" || details["rating"] != "must be at most 5" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"author_name":"A","rating":1,"admin":true}`))
	var body reviewBody
	if err := DecodeJSONBody(req, &body); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=30&bad=x&big=500", nil)
	if v, err := ParseQueryInt(req, "limit", 20, 1, 100); err != nil || v != 30 {
		t.Fatalf("expected 30, got %d %v", v, err)
	}
	if v, err := ParseQueryInt(req, "missing", 20, 1, 100); err != nil || v != 20 {
		t.Fatalf("expected default, got %d %v", v, err)
	}
	if _, err := ParseQueryInt(req, "bad", 20, 1, 100); err == nil {
		t.Fatal("expected non-numeric error")
	}
	if _, err := ParseQueryInt(req, "big", 20, 1, 100); err == nil {
		t.Fatal("expected range error")
	}
}

func TestParseIDs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?product_id=7&zero=0&neg=-1", nil)
	id, err := ParseQueryID(req, "product_id")
	if err != nil || id == nil || *id != 7 {
		t.Fatalf("expected 7, got %v %v", id, err)
	}
	if id, err := ParseQueryID(req, "missing"); err != nil || id != nil {
		t.Fatalf("expected nil for missing, got %v %v", id, err)
	}
	for _, key := range []string{"zero", "neg"} {
		if _, err := ParseQueryID(req, key); err == nil {
			t.Fatalf("expected error for %s", key)
		}
	}
	if _, err := ParsePathID("abc", "id"); err == nil {
		t.Fatal("expected path id error")
	}
	if v, err := ParsePathID("12", "id"); err != nil || v != 12 {
		t.Fatalf("expected 12, got %d %v", v, err)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello world  ", 5); got != "hello" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSanitizeStringKeepsRunesWhole(t *testing.T) {
	if got := SanitizeString("₹₹", 4); got != "₹" {
		t.Fatalf("expected a single rupee sign, got %q", got)
	}
}
