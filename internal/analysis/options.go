package analysis

import (
	"sort"
	"time"

	"sipsa-dashboard/internal/dataset"
)

// DefaultMarketCount caps how many markets the page pre-selects when
// the user has not picked any.
const DefaultMarketCount = 5

// Options feeds the selector widgets: the full table's date bounds,
// the products available inside the chosen date range, and the markets
// that actually report the chosen product in that range.
type Options struct {
	MinDate        time.Time `json:"min_date"`
	MaxDate        time.Time `json:"max_date"`
	Products       []string  `json:"products"`
	Markets        []string  `json:"markets"`
	DefaultMarkets []string  `json:"default_markets"`
}

// SelectorOptions computes the cascading selector inputs. Date bounds
// always come from the full table; product choices honor the date
// range; market choices honor date range and product.
func SelectorOptions(rows []dataset.PriceObservation, f Filter) Options {
	var opts Options
	if len(rows) == 0 {
		return opts
	}

	opts.MinDate = rows[0].Date
	opts.MaxDate = rows[0].Date
	for _, row := range rows[1:] {
		if row.Date.Before(opts.MinDate) {
			opts.MinDate = row.Date
		}
		if row.Date.After(opts.MaxDate) {
			opts.MaxDate = row.Date
		}
	}

	inRange := Apply(rows, Filter{From: f.From, To: f.To})
	opts.Products = uniqueSorted(inRange, func(r dataset.PriceObservation) string { return r.Product })

	withProduct := Apply(inRange, Filter{Product: f.Product})
	opts.Markets = uniqueSorted(withProduct, func(r dataset.PriceObservation) string { return r.Market })

	opts.DefaultMarkets = opts.Markets
	if len(opts.DefaultMarkets) > DefaultMarketCount {
		opts.DefaultMarkets = opts.DefaultMarkets[:DefaultMarketCount]
	}

	return opts
}

func uniqueSorted(rows []dataset.PriceObservation, key func(dataset.PriceObservation) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range rows {
		v := key(row)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
