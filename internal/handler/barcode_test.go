package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleParseBarcode_BracketedForm(t *testing.T) {
	body := ParseBarcodeRequest{Code: "(01)03712345678903(17)260228(10)LOT-42"}

	w := postJSON(t, HandleParseBarcode(), "/api/v1/barcode/parse", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseBarcodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotNil(t, resp.LotNumber)
	assert.Equal(t, "LOT-42", *resp.LotNumber)
	require.NotNil(t, resp.ExpirationDate)
	assert.Equal(t, "2026-02-28", *resp.ExpirationDate)
}

func TestHandleParseBarcode_NoGS1Data(t *testing.T) {
	body := ParseBarcodeRequest{Code: "hello world"}

	w := postJSON(t, HandleParseBarcode(), "/api/v1/barcode/parse", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseBarcodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Nil(t, resp.LotNumber)
	assert.Nil(t, resp.ExpirationDate)
}

func TestHandleParseBarcode_EmptyCodeRejected(t *testing.T) {
	body := ParseBarcodeRequest{Code: ""}

	w := postJSON(t, HandleParseBarcode(), "/api/v1/barcode/parse", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScanBarcode_QueryForm(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/barcode/parse?code="+url.QueryEscape("(17)260228(10)LOT-42"), nil)
	w := httptest.NewRecorder()

	HandleScanBarcode().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseBarcodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.LotNumber)
	assert.Equal(t, "LOT-42", *resp.LotNumber)
	require.NotNil(t, resp.ExpirationDate)
	assert.Equal(t, "2026-02-28", *resp.ExpirationDate)
}

func TestHandleScanBarcode_MissingCode(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/barcode/parse", nil)
	w := httptest.NewRecorder()

	HandleScanBarcode().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
