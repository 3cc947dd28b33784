package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// property-market-engine operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "pme-alerts",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "pme-alerts",
					Rules: []Rule{
						{
							Alert:  "PmeDown",
							Expr:   `absent(up{job="property-market-engine"})`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Property Market Engine is down",
								"description": "The property-market-engine job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "PmeReadinessDown",
							Expr:   `pme_readyz_up == 0`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Property Market Engine readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes. The listing database is likely unreachable.",
							},
						},
						{
							Alert:  "PmeHighErrorRate",
							Expr:   `pme:http_errors:rate5m / pme:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Property Market Engine",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "PmeAnalysisErrors",
							Expr:   `pme:analyses:rate5m{outcome="error"} > 0`,
							For:    "10m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Property analyses are failing",
								"description": "Analyses have been ending in errors for more than 10 minutes. Check listing store connectivity.",
							},
						},
						{
							Alert:  "PmeSweepFailures",
							Expr:   `pme:sweep_failures:rate5m > 0`,
							For:    "30m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Pending-analysis sweeps are failing properties",
								"description": "Sweeps have reported failed properties for more than 30 minutes.",
							},
						},
						{
							Alert:  "PmeSweepStale",
							Expr:   `time() - pme_sweep_last_success_timestamp > 7200`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "No clean pending-analysis sweep in 2 hours",
								"description": "The scheduler has not completed a sweep without failures in over 2 hours.",
							},
						},
						{
							Alert:  "PmeCacheHitRatioLow",
							Expr:   `pme:cache_hit_ratio:rate5m < 0.2`,
							For:    "30m",
							Labels: severity("info"),
							Annotations: map[string]string{
								"summary":     "Cache hit ratio is low",
								"description": "Fewer than 20% of cache lookups in a namespace are hits. Check the cache backend and TTLs.",
							},
						},
					},
				},
			},
		},
	}
}

func severity(level string) map[string]string {
	return map[string]string{"severity": level}
}
