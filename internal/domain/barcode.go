package domain

import "time"

// GS1Data holds the traceability fields decoded from a scanned GS1-128
// payload. Both fields are optional; an unrecognized scan yields the zero
// value. Ephemeral, never persisted by this module.
type GS1Data struct {
	LotNumber      *string    `json:"lot_number,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

// IsEmpty reports whether nothing was decoded from the scan.
func (d GS1Data) IsEmpty() bool {
	return d.LotNumber == nil && d.ExpirationDate == nil
}
