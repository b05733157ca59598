package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	BarcodesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBarcodesParsed,
			Help: HelpTextBarcodesParsed,
		},
		[]string{LabelOutcome},
	)

	LineResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLineResolutions,
			Help: HelpTextLineResolutions,
		},
		[]string{LabelSource},
	)

	MappingUpserts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMappingUpserts,
			Help: HelpTextMappingUpserts,
		},
	)

	RecipesCosted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipesCosted,
			Help: HelpTextRecipesCosted,
		},
	)

	IncompatibleLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIncompatibleLines,
			Help: HelpTextIncompatibleLines,
		},
	)
)
