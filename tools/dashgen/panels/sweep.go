package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SweepDuration returns a timeseries panel showing the p95 sweep duration.
func SweepDuration() *timeseries.PanelBuilder {
	return timeseriesBase("Sweep Duration (p95)", "95th percentile pending-analysis sweep duration", ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`histogram_quantile(0.95, sum(rate(pme_sweep_duration_seconds_bucket{job=%q}[30m])) by (le))`, Job),
			"p95", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// SweepProperties returns a timeseries panel showing properties processed by
// sweeps, split into analyzed and failed.
func SweepProperties() *timeseries.PanelBuilder {
	return timeseriesBase("Sweep Throughput", "Properties processed by sweeps per hour, by result", ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(pme_sweep_properties_total{job=%q}[1h])) by (result)`, Job),
			"{{result}}", "A",
		)).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// NextSweep returns a stat panel showing time until the next scheduled sweep.
func NextSweep() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Sweep").
		Description("Time until the next scheduled pending-analysis sweep").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`pme_sweep_next_run_timestamp{job=%q} - time()`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
