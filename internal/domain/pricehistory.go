package domain

import "time"

// PricePoint is one observed purchase price for an item.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceHistory aggregates the observed prices of one item from one
// supplier. Average/min/max are precomputed upstream when the samples are
// recorded and consumed as given here.
type PriceHistory struct {
	ItemName     string       `json:"item_name"`
	Supplier     string       `json:"supplier"`
	Samples      []PricePoint `json:"samples,omitempty"`
	AveragePrice float64      `json:"average_price"`
	MinPrice     float64      `json:"min_price"`
	MaxPrice     float64      `json:"max_price"`
}

// VolatileItem is a price-history entry ranked by relative price swing.
type VolatileItem struct {
	ItemName     string  `json:"item_name"`
	Supplier     string  `json:"supplier"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	VariationPct float64 `json:"variation_pct"`
}
