package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/angelmondragon/laptopfinder-backend/pkg/db/models"
	"github.com/angelmondragon/laptopfinder-backend/pkg/enums"
)

func toRow(p Product) (models.CatalogProduct, error) {
	row := models.CatalogProduct{
		SKU:             strings.TrimSpace(p.SKU),
		Brand:           p.Brand,
		Series:          p.Series,
		Model:           p.Model,
		Price:           p.Price,
		Currency:        p.Currency,
		Region:          p.Region,
		URL:             p.URL,
		ImageURL:        p.ImageURL,
		CPUBrand:        string(p.CPUBrand),
		CPUTier:         p.CPUTier,
		CPUModel:        p.CPUModel,
		RAMGB:           p.RAMGB,
		StorageType:     string(p.StorageType),
		StorageGB:       p.StorageGB,
		GPUType:         string(p.GPUType),
		GPUModel:        p.GPUModel,
		ScreenSize:      p.ScreenSize,
		Resolution:      string(p.Resolution),
		RefreshHz:       p.RefreshHz,
		Panel:           string(p.Panel),
		WeightKg:        p.WeightKg,
		BatteryHours:    p.BatteryHours,
		BatteryWh:       p.BatteryWh,
		BatteryType:     p.BatteryType,
		Rating:          p.Rating,
		SRGB100:         p.Features.SRGB100,
		DCIP3:           p.Features.DCIP3,
		GoodCooling:     p.Features.GoodCooling,
		RAMUpgradable:   p.Features.RAMUpgradable,
		ExtraSSDSlot:    p.Features.ExtraSSDSlot,
		BacklitKeyboard: p.Features.BacklitKeyboard,
	}

	blobs := []struct {
		dst   *string
		value any
	}{
		{&row.UseCases, nonNil(p.UseCases)},
		{&row.Ports, nonNil(p.Ports)},
		{&row.Specs, p.Specs},
		{&row.Benchmarks, p.Benchmarks},
		{&row.BuyLinks, nonNil(p.BuyLinks)},
	}
	for _, blob := range blobs {
		buf, err := json.Marshal(blob.value)
		if err != nil {
			return models.CatalogProduct{}, fmt.Errorf("encode %s: %w", p.SKU, err)
		}
		*blob.dst = string(buf)
	}
	return row, nil
}

func fromRow(row models.CatalogProduct) Product {
	return Product{
		ID:           row.ID,
		Brand:        row.Brand,
		Series:       row.Series,
		Model:        row.Model,
		SKU:          row.SKU,
		Price:        row.Price,
		Currency:     row.Currency,
		Region:       row.Region,
		URL:          row.URL,
		ImageURL:     row.ImageURL,
		CPUBrand:     enums.CPUBrand(row.CPUBrand),
		CPUTier:      row.CPUTier,
		CPUModel:     row.CPUModel,
		RAMGB:        row.RAMGB,
		StorageType:  enums.StorageType(row.StorageType),
		StorageGB:    row.StorageGB,
		GPUType:      enums.GPUType(row.GPUType),
		GPUModel:     row.GPUModel,
		ScreenSize:   row.ScreenSize,
		Resolution:   enums.Resolution(row.Resolution),
		RefreshHz:    row.RefreshHz,
		Panel:        enums.Panel(row.Panel),
		WeightKg:     row.WeightKg,
		BatteryHours: row.BatteryHours,
		BatteryWh:    row.BatteryWh,
		BatteryType:  row.BatteryType,
		Rating:       row.Rating,
		Features: Features{
			SRGB100:         row.SRGB100,
			DCIP3:           row.DCIP3,
			GoodCooling:     row.GoodCooling,
			RAMUpgradable:   row.RAMUpgradable,
			ExtraSSDSlot:    row.ExtraSSDSlot,
			BacklitKeyboard: row.BacklitKeyboard,
		},
		UseCases:   nonNil(decodeBlob[[]enums.UseCase](row.UseCases)),
		Ports:      nonNil(decodeBlob[[]string](row.Ports)),
		Specs:      decodeBlob[Specs](row.Specs),
		Benchmarks: decodeBlob[Benchmarks](row.Benchmarks),
		BuyLinks:   nonNil(decodeBlob[[]BuyLink](row.BuyLinks)),
	}
}

// decodeBlob never fails: malformed text decodes to the zero value.
func decodeBlob[T any](raw string) T {
	var out T
	if strings.TrimSpace(raw) == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero
	}
	return out
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
