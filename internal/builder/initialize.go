package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/internal/extract"
	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
)

// CatalogWriter is the store surface Initialize needs.
type CatalogWriter interface {
	UpsertAll(ctx context.Context, c catalog.Catalog) error
}

// InitializeParams wires one seeding pass.
type InitializeParams struct {
	Store   CatalogWriter
	Builder *Builder
	Sources []extract.Source
	Curated []catalog.Product
}

// Initialize reads the previous snapshot, builds a fresh catalog and mirrors
// it into the store in one transaction. Only the store write can fail.
func Initialize(ctx context.Context, p InitializeParams) (Report, error) {
	if p.Store == nil || p.Builder == nil {
		return Report{}, errors.New("initialize: store and builder are required")
	}
	previous := p.Builder.Previous(ctx)
	built, report := p.Builder.Build(ctx, p.Sources, p.Curated, previous)
	if err := p.Store.UpsertAll(ctx, built); err != nil {
		return report, fmt.Errorf("store catalog: %w", err)
	}
	return report, nil
}

// ParamsFromConfig pairs the configured listing sources with the curated
// products for store and builder.
func ParamsFromConfig(cfg config.CatalogConfig, store CatalogWriter, b *Builder) InitializeParams {
	return InitializeParams{
		Store:   store,
		Builder: b,
		Sources: Sources(cfg),
		Curated: catalog.Curated(),
	}
}
