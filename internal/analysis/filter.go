package analysis

import (
	"strings"
	"time"

	"sipsa-dashboard/internal/dataset"
)

// Filter is the user's selection: an inclusive date range, an optional
// single product, and a set of markets (empty = all markets).
type Filter struct {
	From    time.Time
	To      time.Time
	Product string
	Markets []string
}

// Apply returns the observations matching the filter. All criteria are
// AND-combined; market values are OR-combined within the set. The
// input slice is never mutated. A zero From/To bound is open-ended.
func Apply(rows []dataset.PriceObservation, f Filter) []dataset.PriceObservation {
	product := strings.ToUpper(strings.TrimSpace(f.Product))
	markets := toUpperSet(f.Markets)

	out := make([]dataset.PriceObservation, 0, len(rows))
	for _, row := range rows {
		if !f.From.IsZero() && row.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && row.Date.After(f.To) {
			continue
		}
		if product != "" && row.Product != product {
			continue
		}
		if len(markets) > 0 && !markets[row.Market] {
			continue
		}
		out = append(out, row)
	}
	return out
}

func toUpperSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.ToUpper(strings.TrimSpace(item))
		if item != "" {
			set[item] = true
		}
	}
	return set
}
