package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pfortier/BistroCore_Go/internal/barcode"
	"github.com/pfortier/BistroCore_Go/internal/logger"
	"github.com/pfortier/BistroCore_Go/internal/metrics"
)

// ParseBarcodeRequest represents a scanned barcode payload
type ParseBarcodeRequest struct {
	Code string `json:"code" validate:"required,max=256"`
}

// ParseBarcodeResponse carries whatever fields the parser could extract.
// Both fields absent means the code carried no usable GS1 data.
type ParseBarcodeResponse struct {
	LotNumber      *string `json:"lot_number,omitempty"`
	ExpirationDate *string `json:"expiration_date,omitempty"` // YYYY-MM-DD
}

// HandleParseBarcode extracts lot number and expiration date from a GS1-128 barcode
// @Summary Parse a GS1-128 barcode
// @Description Extracts lot number (AI 10) and expiration date (AI 17/15) from bracketed or raw GS1-128 data
// @Tags barcode
// @Accept json
// @Produce json
// @Param request body ParseBarcodeRequest true "Scanned barcode"
// @Success 200 {object} ParseBarcodeResponse
// @Failure 400 {object} ErrorResponse
// @Router /barcode/parse [post]
func HandleParseBarcode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ParseBarcodeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Parse barcode"); err != nil {
			return
		}

		respondParsedBarcode(w, log, req.Code)
	}
}

// HandleScanBarcode parses a scanned code passed as a query parameter,
// for scanner bridges that can only issue GETs
// @Summary Parse a GS1-128 barcode (query form)
// @Tags barcode
// @Produce json
// @Param code query string true "Scanned barcode"
// @Success 200 {object} ParseBarcodeResponse
// @Failure 400 {object} ErrorResponse
// @Router /barcode/parse [get]
func HandleScanBarcode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		code, ok := GetQueryParam(r, w, "code")
		if !ok {
			return
		}

		respondParsedBarcode(w, log, code)
	}
}

func respondParsedBarcode(w http.ResponseWriter, log *slog.Logger, code string) {
	data := barcode.ParseGS1(code)

	resp := ParseBarcodeResponse{LotNumber: data.LotNumber}
	if data.ExpirationDate != nil {
		formatted := data.ExpirationDate.Format(time.DateOnly)
		resp.ExpirationDate = &formatted
	}

	outcome := metrics.OutcomeParsed
	if data.IsEmpty() {
		outcome = metrics.OutcomeEmpty
	}
	metrics.BarcodesParsed.WithLabelValues(outcome).Inc()

	log.Debug("Barcode parsed", "outcome", outcome)

	respondJSON(w, http.StatusOK, resp)
}
