// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/property-market-engine/tools/dashgen/panels"
)

// OverviewUID is the stable dashboard UID used for provisioning.
const OverviewUID = "pme-overview"

// BuildOverview constructs the engine overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Property Market Engine").
		Uid(OverviewUID).
		Tags([]string{"pme", "property-market-engine"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.LastSweepStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Analysis").
		WithPanel(panels.AnalysisRate()).
		WithPanel(panels.AnalysisLatency()).
		WithPanel(panels.ComponentUnavailable()))

	b.WithRow(dashboard.NewRowBuilder("Scoring").
		WithPanel(panels.ScoreDistribution()).
		WithPanel(panels.InsufficientDataShare()))

	b.WithRow(dashboard.NewRowBuilder("Cache").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.CacheErrors()))

	b.WithRow(dashboard.NewRowBuilder("Sweep").
		WithPanel(panels.SweepDuration()).
		WithPanel(panels.SweepProperties()).
		WithPanel(panels.NextSweep()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
