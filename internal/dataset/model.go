package dataset

import "time"

// PriceObservation is one row of the consolidated SIPSA-P table:
// the average price per kilogram of a product in a market on a date.
type PriceObservation struct {
	Date          time.Time `json:"date"`
	Group         string    `json:"group"`
	Product       string    `json:"product"`
	ProductCode   string    `json:"product_code"`
	Market        string    `json:"market"`
	AvgPricePerKg float64   `json:"avg_price_per_kg"`
}

// Column names expected in the source CSV.
const (
	ColDate        = "fecha"
	ColGroup       = "grupo"
	ColProduct     = "producto"
	ColProductCode = "codigo_cpc_ac"
	ColMarket      = "mercado"
	ColPrice       = "precio_promedio_por_kilogramo"
)
