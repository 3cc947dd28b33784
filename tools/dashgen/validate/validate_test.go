package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/property-market-engine/tools/dashgen/rules"
)

var testKnown = map[string]bool{
	"pme_http_requests_total":           true,
	"pme_http_request_duration_seconds": true,
	"pme:http_requests:rate5m":          true,
	"up":                                true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{
			name: "known counter",
			expr: `sum(rate(pme_http_requests_total{status=~"5.."}[5m]))`,
		},
		{
			name: "histogram bucket of known histogram",
			expr: `histogram_quantile(0.95, sum(rate(pme_http_request_duration_seconds_bucket[5m])) by (le))`,
		},
		{
			name: "recording rule series",
			expr: `pme:http_requests:rate5m * 60`,
		},
		{
			name: "function without selectors",
			expr: `time()`,
		},
		{
			name:    "unknown metric",
			expr:    `rate(listing_ingest_errors_total[5m])`,
			wantErr: `unknown metric "listing_ingest_errors_total"`,
		},
		{
			name:    "parse error",
			expr:    `sum(rate(pme_http_requests_total[5m])`,
			wantErr: "panel",
		},
		{
			name:    "empty",
			expr:    "  ",
			wantErr: "empty expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Expr("panel", tt.expr, testKnown)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "errors: %v", res.Errors)
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{
		Spec: rules.PrometheusRuleSpec{
			Groups: []rules.RuleGroup{{
				Name: "test",
				Rules: []rules.Rule{
					{Record: "pme:http_requests:rate5m", Expr: `sum(rate(pme_http_requests_total[5m]))`},
					{Record: "pme:unlisted:rate5m", Expr: `sum(rate(pme_http_requests_total[5m]))`},
					{Alert: "Down", Expr: `absent(up{job="property-market-engine"})`},
				},
			}},
		},
	}

	res := Rules(cr, testKnown)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "pme:unlisted:rate5m")
}
