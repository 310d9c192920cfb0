package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/internal/builder"
	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/fetch"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
)

func TestCatalogRefreshJobStoresBuiltCatalog(t *testing.T) {
	store := &recordingCatalogStore{}
	job := newCatalogRefreshJob(t, store)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("expected one upsert, got %d", store.calls)
	}
	if len(store.last) == 0 {
		t.Fatal("expected the seed catalog to be stored when every source is down")
	}
}

func TestCatalogRefreshJobPropagatesStoreErrors(t *testing.T) {
	store := &recordingCatalogStore{err: errors.New("db down")}
	job := newCatalogRefreshJob(t, store)

	if err := job.Run(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCatalogRefreshJobUsesInitializeParams(t *testing.T) {
	store := &recordingCatalogStore{}
	job := newCatalogRefreshJob(t, store)
	var got builder.InitializeParams
	job.initialize = func(_ context.Context, p builder.InitializeParams) (builder.Report, error) {
		got = p
		return builder.Report{Total: 3, Duration: time.Second}, nil
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.Store != store {
		t.Fatalf("expected configured store to be passed through")
	}
	if len(got.Curated) != len(catalog.Curated()) {
		t.Fatalf("expected curated products to be passed through, got %d", len(got.Curated))
	}
	if job.Name() != CatalogRefreshJobName {
		t.Fatalf("unexpected name %q", job.Name())
	}
}

func TestNewCatalogRefreshJobRequiresDependencies(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	if _, err := NewCatalogRefreshJob(CatalogRefreshJobParams{}); err == nil {
		t.Fatal("expected missing logger to fail")
	}
	if _, err := NewCatalogRefreshJob(CatalogRefreshJobParams{Logger: logg}); err == nil {
		t.Fatal("expected missing store to fail")
	}
	if _, err := NewCatalogRefreshJob(CatalogRefreshJobParams{
		Logger: logg,
		Build:  builder.InitializeParams{Store: &recordingCatalogStore{}},
	}); err == nil {
		t.Fatal("expected missing builder to fail")
	}
}

func newCatalogRefreshJob(t *testing.T, store *recordingCatalogStore) *catalogRefreshJob {
	t.Helper()
	offline := fetch.FetcherFunc(func(context.Context, string) (string, error) {
		return "", errors.New("offline")
	})
	jobIface, err := NewCatalogRefreshJob(CatalogRefreshJobParams{
		Logger: logger.New(logger.Options{ServiceName: "test"}),
		Build: builder.InitializeParams{
			Store:   store,
			Builder: builder.New(offline, builder.Options{}),
			Curated: catalog.Curated(),
		},
	})
	if err != nil {
		t.Fatalf("NewCatalogRefreshJob: %v", err)
	}
	job, ok := jobIface.(*catalogRefreshJob)
	if !ok {
		t.Fatalf("expected catalogRefreshJob, got %T", jobIface)
	}
	return job
}

type recordingCatalogStore struct {
	last  catalog.Catalog
	calls int
	err   error
}

func (r *recordingCatalogStore) UpsertAll(_ context.Context, c catalog.Catalog) error {
	r.calls++
	r.last = c
	return r.err
}
