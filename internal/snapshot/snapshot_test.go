package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "catalog.json"))

	products, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("missing snapshot should not error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(products))
	}

	seed := catalog.FallbackSeed()
	if err := store.Write(ctx, seed); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write(ctx, seed[:2]); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	products, err = store.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected full overwrite with 2 products, got %d", len(products))
	}
	if products[0].SKU != seed[0].SKU || products[1].BatteryWh != seed[1].BatteryWh {
		t.Fatalf("snapshot did not round trip: %+v", products[0])
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := NewFileStore(path).Read(context.Background()); err == nil {
		t.Fatal("expected decode error for malformed snapshot")
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakeKV{data: map[string]string{}}
	store := NewRedisStore(fake, "lf:snapshot:catalog")

	products, err := store.Read(ctx)
	if err != nil || len(products) != 0 {
		t.Fatalf("expected empty snapshot, got %d products err=%v", len(products), err)
	}

	if err := store.Write(ctx, catalog.FallbackSeed()[:1]); err != nil {
		t.Fatalf("write: %v", err)
	}
	if fake.ttl != 0 {
		t.Fatalf("snapshots must not expire, got ttl %v", fake.ttl)
	}
	products, err = store.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "SEED-ASUS-TUF-A15" {
		t.Fatalf("unexpected snapshot: %+v", products)
	}

	fake.err = fmt.Errorf("connection refused")
	if _, err := store.Read(ctx); err == nil {
		t.Fatal("expected transport error to surface")
	}
}

func TestNewSelectsBackend(t *testing.T) {
	store, err := New(config.CatalogConfig{SnapshotBackend: "file", SnapshotPath: "data/x.json"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("expected file store, got %T", store)
	}
	if _, err := New(config.CatalogConfig{SnapshotBackend: "redis"}, nil); err == nil {
		t.Fatal("expected redis backend without client to fail")
	}
}

type fakeKV struct {
	data map[string]string
	ttl  time.Duration
	err  error
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = fmt.Sprint(value)
	f.ttl = ttl
	return nil
}
