package finder

import (
	"sort"

	"github.com/angelmondragon/laptopfinder-backend/internal/catalog"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

// Sort orders products in place. Ties keep catalog order.
func Sort(products []catalog.Product, key enums.SortKey, useCase enums.UseCase) {
	less := lessFor(key, useCase)
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

func lessFor(key enums.SortKey, useCase enums.UseCase) func(a, b catalog.Product) bool {
	switch key {
	case enums.SortPriceAsc:
		return func(a, b catalog.Product) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return a.Rating > b.Rating
		}
	case enums.SortPriceDesc:
		// Rating tie-break is ascending here, unlike price_asc.
		return func(a, b catalog.Product) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return a.Rating < b.Rating
		}
	case enums.SortRating:
		return func(a, b catalog.Product) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.Price < b.Price
		}
	case enums.SortBattery:
		return func(a, b catalog.Product) bool {
			if a.BatteryHours != b.BatteryHours {
				return a.BatteryHours > b.BatteryHours
			}
			return a.Rating > b.Rating
		}
	case enums.SortWeight:
		return func(a, b catalog.Product) bool {
			if a.WeightKg != b.WeightKg {
				return a.WeightKg < b.WeightKg
			}
			return a.Rating > b.Rating
		}
	}
	return func(a, b catalog.Product) bool {
		return recommended(a, b, useCase)
	}
}

// recommended sorts descending on (use-case match, rating, battery, price).
func recommended(a, b catalog.Product, useCase enums.UseCase) bool {
	ua, ub := useCaseScore(a, useCase), useCaseScore(b, useCase)
	switch {
	case ua != ub:
		return ua > ub
	case a.Rating != b.Rating:
		return a.Rating > b.Rating
	case a.BatteryHours != b.BatteryHours:
		return a.BatteryHours > b.BatteryHours
	}
	return a.Price > b.Price
}

func useCaseScore(p catalog.Product, useCase enums.UseCase) int {
	if useCase != "" && p.HasUseCase(useCase) {
		return 1
	}
	return 0
}
