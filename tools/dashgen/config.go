package main

import "errors"

// KnownMetrics is the set of metric names exported by property-market-engine
// plus recording rule names referenced in dashboards and alerts. Histogram
// series (_bucket, _sum, _count) resolve to their base name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"pme_http_request_duration_seconds": true,
	"pme_http_requests_total":           true,

	// Health metrics.
	"pme_healthz_up": true,
	"pme_readyz_up":  true,

	// Analysis metrics.
	"pme_analyses_total":              true,
	"pme_analysis_duration_seconds":   true,
	"pme_component_unavailable_total": true,
	"pme_scoring_distribution":        true,

	// Cache metrics.
	"pme_cache_requests_total": true,

	// Sweep metrics.
	"pme_sweep_duration_seconds":       true,
	"pme_sweep_properties_total":       true,
	"pme_sweep_last_success_timestamp": true,
	"pme_sweep_next_run_timestamp":     true,

	// Recording rules.
	"pme:http_requests:rate5m":   true,
	"pme:http_errors:rate5m":     true,
	"pme:analyses:rate5m":        true,
	"pme:cache_hit_ratio:rate5m": true,
	"pme:sweep_failures:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
