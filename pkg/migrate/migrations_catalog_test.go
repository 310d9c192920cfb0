package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, suffix string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", "*_"+suffix))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", suffix)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestCatalogMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "create_catalog_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS catalog_products",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_catalog_products_sku ON catalog_products (sku)",
		"CHECK (price > 0)",
		"CHECK (ram_gb > 0)",
		"CHECK (storage_gb > 0)",
		"CHECK (screen_size > 0)",
		"CHECK (refresh_hz > 0)",
		"buy_links TEXT NOT NULL DEFAULT '[]'",
		"DROP TABLE IF EXISTS catalog_products",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestReviewsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "create_reviews_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS reviews",
		"CHECK (rating BETWEEN 1 AND 5)",
		"CHECK (status IN ('pending', 'approved', 'rejected'))",
		"FOREIGN KEY (product_id) REFERENCES catalog_products(id) ON DELETE SET NULL",
		"CREATE INDEX IF NOT EXISTS idx_reviews_status_created",
		"DROP TABLE IF EXISTS reviews",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
