package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a timeseries panel showing the hit ratio per cache
// namespace.
func CacheHitRatio() *timeseries.PanelBuilder {
	return timeseriesBase("Cache Hit Ratio", "Share of cache lookups served from cache, by namespace", TSWidth).
		WithTarget(PromQuery(`pme:cache_hit_ratio:rate5m * 100`, "{{namespace}}", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Legend(TableLegend("mean", "min")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// CacheErrors returns a timeseries panel showing cache backend errors per
// minute.
func CacheErrors() *timeseries.PanelBuilder {
	return timeseriesBase("Cache Errors / min", "Cache reads or writes that failed against the backend", TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(pme_cache_requests_total{job=%q,result="error"}[5m])) by (namespace) * 60`, Job),
			"{{namespace}}", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds())
}
