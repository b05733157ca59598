package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidDays       = "Invalid days parameter"

	// Costing error messages
	ErrMsgCostRecipeFailed = "Failed to cost recipe"

	// Barcode error messages
	ErrMsgParseBarcodeFailed = "Failed to parse barcode"

	// Resolver error messages
	ErrMsgResolveLineFailed   = "Failed to resolve supplier line"
	ErrMsgUpsertMappingFailed = "Failed to save supplier mapping"

	// Analytics error messages
	ErrMsgAnalyticsFailed = "Failed to compute analytics"
)
