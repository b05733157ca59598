package domain

import "time"

// TemperatureRecord is a single reading from a piece of cold-chain
// equipment. IsCompliant is computed upstream against the equipment's
// acceptable range and consumed as given.
type TemperatureRecord struct {
	EquipmentID string    `json:"equipment_id"`
	Temperature float64   `json:"temperature"`
	RecordedAt  time.Time `json:"recorded_at"`
	IsCompliant bool      `json:"is_compliant"`
}

// Equipment is a monitored fridge, freezer or other cold-chain unit.
type Equipment struct {
	ID      string  `json:"equipment_id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	MinTemp float64 `json:"min_temp"`
	MaxTemp float64 `json:"max_temp"`
}

// ComplianceDay is one point of the daily compliance trend.
type ComplianceDay struct {
	Date           string `json:"date"` // YYYY-MM-DD
	CompliantCount int    `json:"compliant_count"`
	TotalCount     int    `json:"total_count"`
	RatePct        int    `json:"rate_pct"`
}

// EquipmentCompliance is the per-equipment rollup over a trailing window,
// ordered worst-first by the analytics layer.
type EquipmentCompliance struct {
	EquipmentID     string     `json:"equipment_id"`
	EquipmentName   string     `json:"equipment_name"`
	AnomalyCount    int        `json:"anomaly_count"`
	TotalCount      int        `json:"total_count"`
	CompliancePct   int        `json:"compliance_pct"`
	LastTemperature *float64   `json:"last_temperature,omitempty"`
	LastRecordedAt  *time.Time `json:"last_recorded_at,omitempty"`
}
