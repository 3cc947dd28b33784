package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/property-market-engine/internal/engine"
	"github.com/donaldgifford/property-market-engine/pkg/market"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestPrintAnalysis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		result  *domain.AnalysisResult
		want    []string
		notWant []string
	}{
		{
			name: "scored with narrative",
			result: &domain.AnalysisResult{
				PropertyID:      "p-1",
				InvestmentScore: ptr(74),
				Recommendation:  domain.RecommendBuy,
				MarketPosition: domain.MarketPosition{
					Available:          true,
					MarketPercentile:   ptr(22.0),
					PositionCategory:   domain.PositionBottomQuartile,
					SampleSize:         12,
					MedianPricePerArea: ptr(1550.0),
				},
				MarketInsights: []string{"Priced below most comparables"},
				ActionItems:    []string{"Request the service charge history"},
			},
			want: []string{
				"Score:", "74",
				"buy",
				"percentile 22, 12 comparables",
				"1550.00",
				"Insights:",
				"  - Priced below most comparables",
				"Actions:",
			},
			notWant: []string{"Risks:", "Missing data:"},
		},
		{
			name: "insufficient data",
			result: &domain.AnalysisResult{
				PropertyID:     "p-2",
				Recommendation: domain.RecommendInsufficientData,
				MarketPosition: domain.MarketPosition{SampleSize: 2},
				DataQuality: domain.DataQuality{
					InsufficientDataComponents: []string{"market_position", "scarcity"},
				},
			},
			want: []string{
				"Score:", "-",
				"insufficient_data",
				"insufficient data (2 comparables)",
				"market_position, scarcity",
			},
			notWant: []string{"Insights:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, printAnalysis(&buf, tt.result))

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}
		})
	}
}

func TestPrintMarket(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printMarket(&buf, &engine.MarketView{
		Snapshot: market.Snapshot{
			LocationKey:        "tirana",
			PropertyType:       domain.PropertyApartment,
			SampleSize:         10,
			MedianPricePerArea: ptr(1550.0),
			LowerQuartile:      ptr(1325.0),
			UpperQuartile:      ptr(1775.0),
			NewListings30d:     4,
			NewListings90d:     9,
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "tirana")
	assert.Contains(t, out, "1325.00 - 1775.00")
	assert.Contains(t, out, "4 (30d) / 9 (90d)")
	assert.Contains(t, out, "insufficient data")
}

func TestFloatOrDash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", floatOrDash(nil, "%.2f"))
	assert.Equal(t, "+3.5", floatOrDash(ptr(3.5), "%+.1f"))
}
