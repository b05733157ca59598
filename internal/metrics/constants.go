package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameBarcodesParsed    = "barcodes_parsed_total"
	MetricNameLineResolutions   = "supplier_line_resolutions_total"
	MetricNameMappingUpserts    = "supplier_mapping_upserts_total"
	MetricNameRecipesCosted     = "recipes_costed_total"
	MetricNameIncompatibleLines = "incompatible_conversion_lines_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextBarcodesParsed    = "Total number of barcode parse attempts"
	HelpTextLineResolutions   = "Total number of supplier line resolution attempts"
	HelpTextMappingUpserts    = "Total number of supplier mapping upserts"
	HelpTextRecipesCosted     = "Total number of recipe costings computed"
	HelpTextIncompatibleLines = "Total number of recipe lines skipped for incompatible units"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// Barcode parse outcomes
const (
	OutcomeParsed = "parsed"
	OutcomeEmpty  = "empty"
)

// Resolution sources, mirroring domain.ResolutionSource plus a miss bucket
const (
	SourceExact = "exact"
	SourceFuzzy = "fuzzy"
	SourceNone  = "none"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
