package analysis

import (
	"sort"

	"sipsa-dashboard/internal/dataset"
)

// MarketPrice is one market's mean price over the filtered period.
type MarketPrice struct {
	Market        string  `json:"market"`
	AvgPricePerKg float64 `json:"avg_price_per_kg"`
	Observations  int     `json:"observations"`
}

// Rankings orders markets by mean price over the filtered subset.
// All holds every market, most expensive first, for the full table.
type Rankings struct {
	MostExpensive []MarketPrice `json:"most_expensive"`
	Cheapest      []MarketPrice `json:"cheapest"`
	All           []MarketPrice `json:"all"`
}

// Rank groups the subset by market, computes the mean price per
// market, and returns the top-N most expensive (non-increasing) and
// top-N cheapest (non-decreasing) lists. Ties break by market name
// ascending in both directions.
func Rank(rows []dataset.PriceObservation, topN int) Rankings {
	type acc struct {
		sum float64
		n   int
	}

	byMarket := make(map[string]*acc)
	for _, row := range rows {
		a, ok := byMarket[row.Market]
		if !ok {
			a = &acc{}
			byMarket[row.Market] = a
		}
		a.sum += row.AvgPricePerKg
		a.n++
	}

	all := make([]MarketPrice, 0, len(byMarket))
	for m, a := range byMarket {
		all = append(all, MarketPrice{
			Market:        m,
			AvgPricePerKg: a.sum / float64(a.n),
			Observations:  a.n,
		})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].AvgPricePerKg != all[j].AvgPricePerKg {
			return all[i].AvgPricePerKg > all[j].AvgPricePerKg
		}
		return all[i].Market < all[j].Market
	})

	cheapest := make([]MarketPrice, len(all))
	copy(cheapest, all)
	sort.Slice(cheapest, func(i, j int) bool {
		if cheapest[i].AvgPricePerKg != cheapest[j].AvgPricePerKg {
			return cheapest[i].AvgPricePerKg < cheapest[j].AvgPricePerKg
		}
		return cheapest[i].Market < cheapest[j].Market
	})

	return Rankings{
		MostExpensive: limit(all, topN),
		Cheapest:      limit(cheapest, topN),
		All:           all,
	}
}

func limit(list []MarketPrice, n int) []MarketPrice {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}
