package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AnalysisRate returns a timeseries panel showing analyses per minute split
// by outcome.
func AnalysisRate() *timeseries.PanelBuilder {
	return timeseriesBase("Analyses / min", "Completed analyses per minute by outcome", ThirdWidth).
		WithTarget(PromQuery(`pme:analyses:rate5m * 60`, "{{outcome}}", "A")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// AnalysisLatency returns a timeseries panel showing p50 and p95 analysis
// duration.
func AnalysisLatency() *timeseries.PanelBuilder {
	q := func(quantile float64) string {
		return fmt.Sprintf(
			`histogram_quantile(%.2f, sum(rate(pme_analysis_duration_seconds_bucket{job=%q}[5m])) by (le))`,
			quantile, Job,
		)
	}
	return timeseriesBase("Analysis Duration", "Time to analyze a single property", ThirdWidth).
		WithTarget(PromQuery(q(0.50), "p50", "A")).
		WithTarget(PromQuery(q(0.95), "p95", "B")).
		Unit("s").
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ComponentUnavailable returns a timeseries panel showing how often each
// analysis component was skipped for lack of data.
func ComponentUnavailable() *timeseries.PanelBuilder {
	return timeseriesBase("Components Without Data", "Analyses per minute in which a component was excluded from scoring", ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(pme_component_unavailable_total{job=%q}[5m])) by (component) * 60`, Job),
			"{{component}}", "A",
		)).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ScoreDistribution returns a bar gauge panel showing the distribution of
// investment scores across histogram buckets.
func ScoreDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Score Distribution").
		Description("Distribution of investment scores (0-100) over the last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(16).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(pme_scoring_distribution_bucket{job=%q}[1h])) by (le)`, Job),
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// InsufficientDataShare returns a stat panel showing the share of analyses
// that ended without a score.
func InsufficientDataShare() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Insufficient Data %").
		Description("Share of analyses over the last hour that produced no score").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(
				`sum(increase(pme_analyses_total{job=%[1]q,outcome="insufficient_data"}[1h])) / sum(increase(pme_analyses_total{job=%[1]q}[1h])) * 100`,
				Job,
			),
			"", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(25, 50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
