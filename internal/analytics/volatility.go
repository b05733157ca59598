package analytics

import (
	"sort"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// Variation computes the relative price swing of one history in percent:
// (max-min)/average x 100. Returns 0 when the average is not positive or
// the price never moved.
func Variation(h domain.PriceHistory) float64 {
	if h.AveragePrice <= 0 || h.MaxPrice == h.MinPrice {
		return 0
	}
	return (h.MaxPrice - h.MinPrice) / h.AveragePrice * 100
}

// ComputeTopVolatileItems ranks price histories by variation percent,
// keeping only those strictly above thresholdPct, descending, truncated
// to topN (topN <= 0 keeps everything).
func ComputeTopVolatileItems(histories []domain.PriceHistory, thresholdPct float64, topN int) []domain.VolatileItem {
	items := make([]domain.VolatileItem, 0, len(histories))
	for _, h := range histories {
		v := Variation(h)
		if v <= thresholdPct {
			continue
		}
		items = append(items, domain.VolatileItem{
			ItemName:     h.ItemName,
			Supplier:     h.Supplier,
			AveragePrice: h.AveragePrice,
			MinPrice:     h.MinPrice,
			MaxPrice:     h.MaxPrice,
			VariationPct: v,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].VariationPct > items[j].VariationPct
	})

	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}
	return items
}
