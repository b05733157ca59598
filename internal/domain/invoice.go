package domain

import "time"

// Invoice is the minimal supplier invoice record the spend analytics
// consume. OCR extraction and line items live outside this module.
type Invoice struct {
	ID         string    `json:"invoice_id"`
	SupplierID string    `json:"supplier_id,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
	TotalHT    float64   `json:"total_ht"`
}

// MonthlySpend is one bucket of the trailing monthly spend series.
type MonthlySpend struct {
	Month        string  `json:"month"` // YYYY-MM
	TotalHT      float64 `json:"total_ht"`
	InvoiceCount int     `json:"invoice_count"`
}
