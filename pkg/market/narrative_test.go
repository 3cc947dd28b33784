package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

func TestBuildNarrative(t *testing.T) {
	t.Parallel()

	r := &domain.AnalysisResult{
		MarketPosition: domain.MarketPosition{
			Available:             true,
			PositionCategory:      domain.PositionBottomQuartile,
			SampleSize:            8,
			PriceAdvantagePercent: ptr(-20.0),
			PotentialSavings:      ptr(25000.0),
		},
		MarketMomentum: domain.MarketMomentum{
			Available:            true,
			MarketTemperature:    domain.TemperatureHot,
			MarketPhase:          domain.PhaseExpansion,
			TimingRecommendation: domain.TimingActFast,
		},
		InvestmentPotential: domain.InvestmentPotential{
			Available:        true,
			GrossAnnualYield: ptr(9.0),
			RentSource:       RentSourceEstimate,
			MarketComparison: domain.MarketComparison{
				Performance:     domain.PerformanceAbove,
				YieldDifference: ptr(3.5),
			},
		},
		AgentIntelligence: &domain.AgentIntelligence{
			Available:            true,
			NegotiationPotential: domain.NegotiationHigh,
			LowConfidence:        true,
		},
	}

	n := BuildNarrative(r, DefaultPolicy())

	assert.Contains(t, n.Insights, "Priced in the bottom quartile of 8 comparables, 20.0% below the median price per area")
	assert.Contains(t, n.Insights, "Asking price is 25000 below the median-implied value")
	assert.Contains(t, n.Insights, "Market is hot (expansion phase)")
	assert.Contains(t, n.Risks, "Agent profile is based on very few listings")
	assert.Contains(t, n.Actions, "Verify achievable rent with local letting agents")
	assert.LessOrEqual(t, len(n.Insights), 5)
	assert.LessOrEqual(t, len(n.Risks), 4)
	assert.LessOrEqual(t, len(n.Actions), 5)

	assert.Equal(t, n, BuildNarrative(r, DefaultPolicy()), "narrative must be deterministic")
}

func TestBuildNarrative_PositionUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		position    domain.MarketPosition
		wantRisks   []string
		wantActions []string
	}{
		{
			name:     "too few comparables",
			position: domain.MarketPosition{SampleSize: 2, PositionCategory: domain.PositionInsufficientData},
			wantRisks: []string{
				"Only 2 comparable listings available; market position could not be established",
			},
			wantActions: []string{"Gather additional comparable sales before committing"},
		},
		{
			name: "enough comparables but no price per area",
			position: domain.MarketPosition{
				SampleSize:         10,
				PositionCategory:   domain.PositionInsufficientData,
				MedianPricePerArea: ptr(1550.0),
			},
			wantRisks: []string{
				"Asking price or floor area missing; position against 10 comparables could not be computed",
			},
			wantActions: []string{"Confirm the asking price and floor area with the listing agent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := BuildNarrative(&domain.AnalysisResult{MarketPosition: tt.position}, DefaultPolicy())

			assert.Empty(t, n.Insights)
			assert.NotNil(t, n.Insights)
			assert.Equal(t, tt.wantRisks, n.Risks)
			assert.Equal(t, tt.wantActions, n.Actions)
		})
	}
}
