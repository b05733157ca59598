package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/pfortier/BistroCore_Go/internal/domain"
)

// ComputeEquipmentBreakdown restricts records to the trailing `days`
// window and rolls them up per equipment: anomaly count, total count,
// compliance rate and most recent reading. Equipment with no records in
// the window reports a zero rate and nil last reading. The result is
// ordered worst-first: anomalies descending, then compliance ascending,
// then name.
func ComputeEquipmentBreakdown(equipment []domain.Equipment, records []domain.TemperatureRecord, days int, now time.Time) []domain.EquipmentCompliance {
	cutoff := now.AddDate(0, 0, -days)

	rows := make([]domain.EquipmentCompliance, len(equipment))
	index := make(map[string]int, len(equipment))
	for i, eq := range equipment {
		rows[i] = domain.EquipmentCompliance{EquipmentID: eq.ID, EquipmentName: eq.Name}
		index[eq.ID] = i
	}

	for _, rec := range records {
		if rec.RecordedAt.Before(cutoff) || rec.RecordedAt.After(now) {
			continue
		}
		i, ok := index[rec.EquipmentID]
		if !ok {
			// Reading from unknown equipment: nothing to attribute it to.
			continue
		}

		row := &rows[i]
		row.TotalCount++
		if !rec.IsCompliant {
			row.AnomalyCount++
		}
		if row.LastRecordedAt == nil || rec.RecordedAt.After(*row.LastRecordedAt) {
			ts := rec.RecordedAt
			temp := rec.Temperature
			row.LastRecordedAt = &ts
			row.LastTemperature = &temp
		}
	}

	for i := range rows {
		if rows[i].TotalCount > 0 {
			compliant := rows[i].TotalCount - rows[i].AnomalyCount
			rows[i].CompliancePct = int(math.Round(float64(compliant) / float64(rows[i].TotalCount) * 100))
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AnomalyCount != rows[j].AnomalyCount {
			return rows[i].AnomalyCount > rows[j].AnomalyCount
		}
		if rows[i].CompliancePct != rows[j].CompliancePct {
			return rows[i].CompliancePct < rows[j].CompliancePct
		}
		return rows[i].EquipmentName < rows[j].EquipmentName
	})

	return rows
}
