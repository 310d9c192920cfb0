package pagination

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name                string
		page, size, total   int
		wantPage, wantPages int
		wantStart, wantEnd  int
		wantPrev, wantNext  bool
	}{
		{"first page", 1, 12, 30, 1, 3, 0, 12, false, true},
		{"last partial page", 3, 12, 30, 3, 3, 24, 30, true, false},
		{"beyond last page clamps", 5, 12, 20, 2, 2, 12, 20, true, false},
		{"zero matches still one page", 4, 24, 0, 1, 1, 0, 0, false, false},
		{"negative page", -2, 48, 100, 1, 3, 0, 48, false, true},
		{"disallowed size falls back", 1, 13, 30, 1, 3, 0, 12, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Clamp(tc.page, tc.size, tc.total)
			if p.Page != tc.wantPage || p.TotalPages != tc.wantPages {
				t.Fatalf("Clamp() page=%d pages=%d, want %d/%d", p.Page, p.TotalPages, tc.wantPage, tc.wantPages)
			}
			start, end := p.Bounds()
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("Bounds() = [%d,%d), want [%d,%d)", start, end, tc.wantStart, tc.wantEnd)
			}
			if p.HasPrev != tc.wantPrev || p.HasNext != tc.wantNext {
				t.Fatalf("prev/next = %v/%v, want %v/%v", p.HasPrev, p.HasNext, tc.wantPrev, tc.wantNext)
			}
		})
	}
}

func TestNormalizeLimit(t *testing.T) {
	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("expected default limit, got %d", got)
	}
	if got := NormalizeLimit(1000); got != MaxLimit {
		t.Fatalf("expected max limit, got %d", got)
	}
	if got := LimitWithBuffer(10); got != 11 {
		t.Fatalf("expected buffered limit 11, got %d", got)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 30, 0, 123, time.UTC)
	encoded := EncodeCursor(Cursor{CreatedAt: created, ID: 42})

	cursor, err := ParseCursor(encoded)
	if err != nil {
		t.Fatalf("parse cursor: %v", err)
	}
	if !cursor.CreatedAt.Equal(created) || cursor.ID != 42 {
		t.Fatalf("unexpected cursor %+v", cursor)
	}

	if cursor, err := ParseCursor(""); err != nil || cursor != nil {
		t.Fatalf("empty cursor should be nil, got %+v %v", cursor, err)
	}
	if _, err := ParseCursor("not-base64!"); err == nil {
		t.Fatal("expected error for malformed cursor")
	}
}
