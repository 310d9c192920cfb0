// Package benchmarks serves the static CPU, GPU and game FPS tables.
package benchmarks

import (
	"sort"
	"strings"

	pkgerrors "github.com/angelmondragon/laptopfinder-backend/pkg/errors"
)

const (
	CategoryCPU   = "cpu"
	CategoryGPU   = "gpu"
	CategoryGames = "games"
)

// Row is one benchmark entry. Score is a synthetic multi-core score for cpu
// and gpu rows and average FPS for game rows.
type Row struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

var categories = []string{CategoryCPU, CategoryGPU, CategoryGames}

var tables = map[string][]Row{
	CategoryCPU: {
		{Name: "Ryzen 7 7840HS", Score: 28000},
		{Name: "Intel i7-13700H", Score: 25000},
		{Name: "Intel i5-13420H", Score: 18000},
		{Name: "Ryzen 5 7640HS", Score: 22000},
		{Name: "Intel i7-13620H", Score: 23000},
		{Name: "Intel Core Ultra 9 275HX", Score: 36500},
		{Name: "Ryzen AI 9 HX 370", Score: 33000},
	},
	CategoryGPU: {
		{Name: "RTX 4070 Laptop", Score: 17500},
		{Name: "RTX 4060 Laptop", Score: 15000},
		{Name: "RTX 4050 Laptop", Score: 12000},
		{Name: "Radeon 780M iGPU", Score: 4500},
		{Name: "Intel Arc A370M", Score: 7000},
		{Name: "RTX 5080 Laptop", Score: 24500},
		{Name: "RTX 3050 Laptop", Score: 8200},
	},
	CategoryGames: {
		{Name: "Cyberpunk 2077 · RTX 4060 · 1080p High", Score: 68},
		{Name: "Cyberpunk 2077 · RTX 4070 · 1440p High", Score: 62},
		{Name: "Valorant · RTX 3050 · 1080p High", Score: 240},
		{Name: "Forza Horizon 5 · RTX 4050 · 1080p Ultra", Score: 84},
		{Name: "Red Dead Redemption 2 · RTX 5080 · 1440p Ultra", Score: 96},
	},
}

// Categories lists the valid category keys.
func Categories() []string {
	return append([]string(nil), categories...)
}

// Lookup returns every table when category is empty, or the one named table
// sorted by score descending. Unknown categories yield a VALIDATION_ERROR
// carrying valid_categories.
func Lookup(category string) (map[string][]Row, error) {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" {
		out := make(map[string][]Row, len(categories))
		for _, name := range categories {
			out[name] = sorted(tables[name])
		}
		return out, nil
	}
	rows, ok := tables[key]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown benchmark category").
			WithDetails(map[string]any{
				"category":         category,
				"valid_categories": Categories(),
			})
	}
	return map[string][]Row{key: sorted(rows)}, nil
}

func sorted(rows []Row) []Row {
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
