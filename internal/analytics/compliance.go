package analytics

import (
	"math"
	"time"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// dayKey formats a time as the YYYY-MM-DD bucket label.
const dayKey = "2006-01-02"

// ComputeComplianceTrend buckets temperature records into `days` trailing
// calendar days ending today (relative to now). A day's rate is
// round(compliant/total x 100), 0 when the day has no records.
func ComputeComplianceTrend(records []domain.TemperatureRecord, days int, now time.Time) []domain.ComplianceDay {
	if days < 1 {
		return []domain.ComplianceDay{}
	}

	// Day labels follow the UTC calendar, same as the record keys.
	now = now.UTC()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	trend := make([]domain.ComplianceDay, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		d := anchor.AddDate(0, 0, i-days+1)
		key := d.Format(dayKey)
		trend[i] = domain.ComplianceDay{Date: key}
		index[key] = i
	}

	for _, rec := range records {
		key := rec.RecordedAt.UTC().Format(dayKey)
		i, ok := index[key]
		if !ok {
			continue
		}
		trend[i].TotalCount++
		if rec.IsCompliant {
			trend[i].CompliantCount++
		}
	}

	for i := range trend {
		if trend[i].TotalCount > 0 {
			trend[i].RatePct = int(math.Round(float64(trend[i].CompliantCount) / float64(trend[i].TotalCount) * 100))
		}
	}

	return trend
}
