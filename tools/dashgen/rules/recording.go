package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "pme-recording-rules",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "pme-recording",
					Rules: []Rule{
						{
							Record: "pme:http_requests:rate5m",
							Expr:   `sum(rate(pme_http_requests_total[5m]))`,
						},
						{
							Record: "pme:http_errors:rate5m",
							Expr:   `sum(rate(pme_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "pme:analyses:rate5m",
							Expr:   `sum(rate(pme_analyses_total[5m])) by (outcome)`,
						},
						{
							Record: "pme:cache_hit_ratio:rate5m",
							Expr: `sum(rate(pme_cache_requests_total{result="hit"}[5m])) by (namespace)` +
								` / sum(rate(pme_cache_requests_total[5m])) by (namespace)`,
						},
						{
							Record: "pme:sweep_failures:rate5m",
							Expr:   `sum(rate(pme_sweep_properties_total{result="failed"}[5m]))`,
						},
					},
				},
			},
		},
	}
}

func ruleLabels() map[string]string {
	return map[string]string{
		"prometheus": "system-rules-prometheus",
	}
}
