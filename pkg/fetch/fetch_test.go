package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
)

func testScrapeConfig() config.ScrapeConfig {
	return config.ScrapeConfig{
		Timeout:        2 * time.Second,
		RequestsPerSec: 0,
		RetryAttempts:  3,
		RetryBaseDelay: time.Millisecond,
	}
}

func TestHTTPFetcherReturnsBodyWithBrowserHeaders(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(testScrapeConfig(), nil)
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !strings.Contains(body, "ok") {
		t.Fatalf("unexpected body %q", body)
	}
	if gotUA != defaultUserAgent {
		t.Fatalf("expected default user agent, got %q", gotUA)
	}
}

func TestHTTPFetcherDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(testScrapeConfig(), nil).Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("expected StatusError 404, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}

func TestHTTPFetcherRetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	body, err := NewHTTPFetcher(testScrapeConfig(), nil).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if body != "recovered" {
		t.Fatalf("unexpected body %q", body)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestHTTPFetcherGivesUpAfterMaxAttempts(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(testScrapeConfig(), nil).Fetch(context.Background(), srv.URL)
	if !IsStatus(err, http.StatusServiceUnavailable) {
		t.Fatalf("expected wrapped 503, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry{MaxAttempts: 5, BaseDelay: time.Hour}.Do(ctx, "op", func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
}

func TestRetryPermanentShortCircuits(t *testing.T) {
	sentinel := errors.New("bad input")
	calls := 0
	err := Retry{MaxAttempts: 5, BaseDelay: time.Millisecond}.Do(context.Background(), "op", func(context.Context) error {
		calls++
		return Permanent(sentinel)
	})
	if !errors.Is(err, sentinel) || calls != 1 {
		t.Fatalf("expected permanent error after one call, got %v (%d calls)", err, calls)
	}
}

func TestDocumentParsesFetchedHTML(t *testing.T) {
	f := FetcherFunc(func(ctx context.Context, url string) (string, error) {
		return `<ul><li class="item">a</li><li class="item">b</li></ul>`, nil
	})
	doc, err := Document(context.Background(), f, "https://example.com")
	if err != nil {
		t.Fatalf("Document returned error: %v", err)
	}
	if got := doc.Find("li.item").Length(); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
}

func TestNewSelectsRenderer(t *testing.T) {
	cfg := testScrapeConfig()
	if _, ok := New(cfg, nil).(*HTTPFetcher); !ok {
		t.Fatal("expected http fetcher by default")
	}
	cfg.Renderer = config.RendererChrome
	if _, ok := New(cfg, nil).(*ChromeFetcher); !ok {
		t.Fatal("expected chrome fetcher")
	}
}
