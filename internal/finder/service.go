package finder

import (
	"context"
	"fmt"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

// Service serves finder queries from the catalog store.
type Service interface {
	Query(ctx context.Context, sel Selection) (*Result, error)
	Product(ctx context.Context, id uint) (*catalog.Product, error)
}

type catalogReader interface {
	FetchAll(ctx context.Context) (catalog.Catalog, error)
	FetchOne(ctx context.Context, id uint) (catalog.Product, error)
}

type service struct {
	store catalogReader
}

// NewService constructs a finder service over the catalog store.
func NewService(store catalogReader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	return &service{store: store}, nil
}

func (s *service) Query(ctx context.Context, sel Selection) (*Result, error) {
	c, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}
	result := Query(c, sel)
	return &result, nil
}

func (s *service) Product(ctx context.Context, id uint) (*catalog.Product, error) {
	product, err := s.store.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
