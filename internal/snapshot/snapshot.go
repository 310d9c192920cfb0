// Package snapshot persists the last built catalog for cache-first lookups and
// build fallback. A missing snapshot reads as an empty list, not an error.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/redis"
)

// Store reads and overwrites the catalog snapshot.
type Store interface {
	Read(ctx context.Context) ([]catalog.Product, error)
	Write(ctx context.Context, products []catalog.Product) error
}

// New picks the configured backend. Redis requires a client.
func New(cfg config.CatalogConfig, client *redis.Client) (Store, error) {
	if cfg.UseRedisSnapshots() {
		if client == nil {
			return nil, errors.New("redis snapshot backend requires a redis client")
		}
		return NewRedisStore(client, client.SnapshotKey("catalog")), nil
	}
	return NewFileStore(cfg.SnapshotPath), nil
}

// FileStore keeps the snapshot as a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Read(ctx context.Context) ([]catalog.Product, error) {
	buf, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	return decode(buf)
}

// Write replaces the file atomically through a temp file and rename.
func (s *FileStore) Write(ctx context.Context, products []catalog.Product) error {
	buf, err := encode(products)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

type kv interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RedisStore keeps the snapshot under a single key without expiry.
type RedisStore struct {
	client kv
	key    string
}

func NewRedisStore(client kv, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Read(ctx context.Context) ([]catalog.Product, error) {
	raw, err := s.client.Get(ctx, s.key)
	if redis.IsNil(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.key, err)
	}
	return decode([]byte(raw))
}

func (s *RedisStore) Write(ctx context.Context, products []catalog.Product) error {
	buf, err := encode(products)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, string(buf), 0); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.key, err)
	}
	return nil
}

func encode(products []catalog.Product) ([]byte, error) {
	if products == nil {
		products = []catalog.Product{}
	}
	buf, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf, nil
}

func decode(buf []byte) ([]catalog.Product, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, nil
	}
	var products []catalog.Product
	if err := json.Unmarshal(buf, &products); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return products, nil
}
