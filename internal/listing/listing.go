// Package listing serves the compact laptop summaries behind /api/laptops.
package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

// UseCaseAll disables the use-case filter.
const UseCaseAll = "all"

// Summary is the card-sized view of a product.
type Summary struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	CPU      string          `json:"cpu"`
	GPU      string          `json:"gpu"`
	RAMGB    int             `json:"ram_gb"`
	Storage  string          `json:"storage"`
	Display  string          `json:"display"`
	WeightKg float64         `json:"weight_kg"`
	Price    int             `json:"price"`
	Currency string          `json:"currency"`
	ImageURL string          `json:"image_url"`
	Battery  string          `json:"battery"`
	UseCases []enums.UseCase `json:"use_cases"`
}

// Input filters the listing. A nil MaxPrice means no cap.
type Input struct {
	UseCase  string
	MaxPrice *int
}

// ParseMaxPrice accepts an empty value or a non-negative integer.
func ParseMaxPrice(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "max_price must be a non-negative integer").
			WithDetails(map[string]any{"max_price": raw})
	}
	return &value, nil
}

// Summarize builds the summary for one product.
func Summarize(p catalog.Product) Summary {
	return Summary{
		ID:       p.ID,
		Name:     p.DisplayName(),
		CPU:      p.CPUDisplay(),
		GPU:      p.GPUModel,
		RAMGB:    p.RAMGB,
		Storage:  p.StorageSummary(),
		Display:  p.DisplaySummary(),
		WeightKg: p.WeightKg,
		Price:    p.Price,
		Currency: p.Currency,
		ImageURL: p.ImageURL,
		Battery:  batterySummary(p),
		UseCases: p.UseCases,
	}
}

func batterySummary(p catalog.Product) string {
	parts := make([]string, 0, 2)
	if p.BatteryWh > 0 {
		parts = append(parts, fmt.Sprintf("%dWh", p.BatteryWh))
	}
	if p.BatteryType != "" {
		parts = append(parts, p.BatteryType)
	}
	return strings.Join(parts, " ")
}

// Filter keeps catalog order. The use case is matched case-insensitively;
// empty and "all" disable it.
func Filter(c catalog.Catalog, in Input) []Summary {
	useCase := strings.ToLower(strings.TrimSpace(in.UseCase))
	out := make([]Summary, 0, len(c))
	for _, p := range c {
		if useCase != "" && useCase != UseCaseAll && !p.HasUseCase(enums.UseCase(useCase)) {
			continue
		}
		if in.MaxPrice != nil && p.Price > *in.MaxPrice {
			continue
		}
		out = append(out, Summarize(p))
	}
	return out
}

type catalogReader interface {
	FetchAll(ctx context.Context) (catalog.Catalog, error)
}

// Service lists summaries from the catalog store.
type Service interface {
	List(ctx context.Context, in Input) ([]Summary, error)
}

type service struct {
	store catalogReader
}

func NewService(store catalogReader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	return &service{store: store}, nil
}

func (s *service) List(ctx context.Context, in Input) ([]Summary, error) {
	c, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}
	return Filter(c, in), nil
}
