package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// latencyQuery builds a histogram_quantile expression over the HTTP request
// duration histogram.
func latencyQuery(q float64) string {
	return fmt.Sprintf(
		`histogram_quantile(%.2f, sum(rate(pme_http_request_duration_seconds_bucket{job=%q}[5m])) by (le))`,
		q, Job,
	)
}

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return timeseriesBase("Request Rate", "HTTP requests per second", ThirdWidth).
		WithTarget(PromQuery(`pme:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95, and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return timeseriesBase("Latency Percentiles", "HTTP request duration percentiles", ThirdWidth).
		WithTarget(PromQuery(latencyQuery(0.50), "p50", "A")).
		WithTarget(PromQuery(latencyQuery(0.95), "p95", "B")).
		WithTarget(PromQuery(latencyQuery(0.99), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return timeseriesBase("Error Rate %", "HTTP 5xx error rate as percentage of total requests", ThirdWidth).
		WithTarget(PromQuery(
			`pme:http_errors:rate5m / pme:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
