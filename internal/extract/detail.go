package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/angelmondragon/laptopfinder-backend/internal/normalize"
)

// Battery is the capacity and chemistry read from a product detail page.
type Battery struct {
	Wh   int
	Text string
}

// ExtractBattery reads the battery row of a product detail page spec table.
// Tables (th/td), definition lists and labelled spec rows are recognized.
func ExtractBattery(html string) (Battery, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Battery{}, false
	}

	var found Battery
	ok := false
	visit := func(label, value string) bool {
		label = strings.ToLower(normalize.Clean(label))
		if !strings.Contains(label, "battery") || strings.Contains(label, "life") {
			return true
		}
		text := normalize.BatteryText(value)
		wh := normalize.BatteryWh(text)
		if text == "" || (wh == 0 && normalize.BatteryChemistry(text) == "") {
			return true
		}
		found, ok = Battery{Wh: wh, Text: text}, true
		return false
	}

	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := row.Find("th").First()
		if label.Length() == 0 {
			label = row.Find("td").First()
		}
		return visit(label.Text(), label.NextAllFiltered("td").First().Text())
	})
	if ok {
		return found, true
	}

	doc.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		return visit(dt.Text(), dt.NextFiltered("dd").Text())
	})
	if ok {
		return found, true
	}

	doc.Find(".spec-row, .product-spec, [data-spec]").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := row.Find(".spec-label, .label").First().Text()
		if attr, has := row.Attr("data-spec"); has && label == "" {
			label = attr
		}
		return visit(label, row.Find(".spec-value, .value").First().Text())
	})
	return found, ok
}
