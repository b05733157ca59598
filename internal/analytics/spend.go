package analytics

import (
	"time"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// monthKey formats a time as the YYYY-MM bucket label.
const monthKey = "2006-01"

// ComputeMonthlySpend buckets invoices into exactly `months` trailing
// calendar months ending at now's month. Months with no invoices appear
// with a zero total; invoices outside the window are ignored.
func ComputeMonthlySpend(invoices []domain.Invoice, months int, now time.Time) []domain.MonthlySpend {
	if months < 1 {
		return []domain.MonthlySpend{}
	}

	// Bucket labels follow the UTC calendar, same as the invoice keys, so
	// a zoned now must be converted before decomposing. Anchoring on the
	// first of the month sidesteps day-of-month arithmetic (AddDate from
	// Jan 31 would skip short months).
	now = now.UTC()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make([]domain.MonthlySpend, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := anchor.AddDate(0, i-months+1, 0)
		key := m.Format(monthKey)
		buckets[i] = domain.MonthlySpend{Month: key}
		index[key] = i
	}

	for _, inv := range invoices {
		key := inv.IssuedAt.UTC().Format(monthKey)
		i, ok := index[key]
		if !ok {
			continue
		}
		buckets[i].TotalHT += inv.TotalHT
		buckets[i].InvoiceCount++
	}

	return buckets
}
