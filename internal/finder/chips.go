package finder

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Chip is one active filter value with a link that drops just that value.
type Chip struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

var amounts = message.NewPrinter(language.English)

// Chips lists one chip per active value in s. Removing a chip resets paging.
func Chips(s Selection) []Chip {
	base := s
	base.Page = 1

	var chips []Chip
	add := func(key, value, label string, without Selection) {
		chips = append(chips, Chip{Key: key, Value: value, Label: label, URL: without.URL()})
	}

	if s.Query != "" {
		without := base
		without.Query = ""
		add("q", s.Query, `Search: "`+s.Query+`"`, without)
	}
	if s.UseCase != "" {
		without := base
		without.UseCase = ""
		add("use_case", string(s.UseCase), "Use case: "+valueLabel("use_case", string(s.UseCase)), without)
	}
	if s.MinPrice > 0 {
		without := base
		without.MinPrice = 0
		add("min_price", strconv.Itoa(s.MinPrice), amounts.Sprintf("Min ₹%d", s.MinPrice), without)
	}
	if s.MaxPrice > 0 {
		without := base
		without.MaxPrice = 0
		add("max_price", strconv.Itoa(s.MaxPrice), amounts.Sprintf("Max ₹%d", s.MaxPrice), without)
	}
	if s.StorageMin > 0 {
		without := base
		without.StorageMin = 0
		add("storage_min", strconv.Itoa(s.StorageMin), amounts.Sprintf("Storage ≥ %d GB", s.StorageMin), without)
	}

	for _, d := range dimensions {
		selected := d.get(&base)
		for i, value := range selected {
			rest := make([]string, 0, len(selected)-1)
			rest = append(rest, selected[:i]...)
			rest = append(rest, selected[i+1:]...)

			without := base
			d.set(&without, rest)
			add(d.key, value, d.label+": "+valueLabel(d.key, value), without)
		}
	}

	for _, t := range toggles {
		if !*t.ptr(&base.Toggles) {
			continue
		}
		without := base
		*t.ptr(&without.Toggles) = false
		add(t.key, "1", t.label, without)
	}
	return chips
}
