package market

import (
	"fmt"
	"math"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Narrative list limits.
const (
	maxInsights = 5
	maxRisks    = 4
	maxActions  = 5
)

// Narrative is the human-readable commentary attached to a result.
type Narrative struct {
	Insights []string
	Risks    []string
	Actions  []string
}

// BuildNarrative derives insights, risks and action items from the computed
// sections of r. The output depends only on r and p.
func BuildNarrative(r *domain.AnalysisResult, p Policy) Narrative {
	var n Narrative

	mp := r.MarketPosition
	switch {
	case !mp.Available && mp.SampleSize < p.MinSampleSize:
		n.Risks = append(n.Risks, fmt.Sprintf(
			"Only %d comparable listings available; market position could not be established", mp.SampleSize))
		n.Actions = append(n.Actions, "Gather additional comparable sales before committing")
	case !mp.Available:
		n.Risks = append(n.Risks, fmt.Sprintf(
			"Asking price or floor area missing; position against %d comparables could not be computed", mp.SampleSize))
		n.Actions = append(n.Actions, "Confirm the asking price and floor area with the listing agent")
	case mp.PositionCategory == domain.PositionBottomQuartile:
		n.Insights = append(n.Insights, fmt.Sprintf(
			"Priced in the bottom quartile of %d comparables, %.1f%% below the median price per area",
			mp.SampleSize, math.Abs(deref(mp.PriceAdvantagePercent))))
	case mp.PositionCategory == domain.PositionTopQuartile:
		n.Risks = append(n.Risks, fmt.Sprintf(
			"Priced in the top quartile, %.1f%% above the median price per area", deref(mp.PriceAdvantagePercent)))
		n.Actions = append(n.Actions, "Ask for justification of the premium over comparable listings")
	default:
		n.Insights = append(n.Insights, fmt.Sprintf(
			"Priced at percentile %.0f among %d comparables", deref(mp.MarketPercentile), mp.SampleSize))
	}
	if s := deref(mp.PotentialSavings); s > 0 {
		n.Insights = append(n.Insights, fmt.Sprintf("Asking price is %.0f below the median-implied value", s))
	}

	mm := r.MarketMomentum
	if mm.Available {
		n.Insights = append(n.Insights, fmt.Sprintf("Market is %s (%s phase)", mm.MarketTemperature, mm.MarketPhase))
		switch mm.TimingRecommendation {
		case domain.TimingActFast:
			n.Actions = append(n.Actions, "Demand is strong; schedule a viewing and prepare an offer quickly")
		case domain.TimingWaitAndNegotiate:
			n.Actions = append(n.Actions, "Market is slow; negotiate firmly or wait for price reductions")
		}
		if mm.MarketPhase == domain.PhaseContraction {
			n.Risks = append(n.Risks, "Prices in this market are contracting")
		}
	}

	if sc := r.Scarcity; sc.Available && sc.ScarcityCategory == domain.ScarcityRare {
		n.Insights = append(n.Insights, fmt.Sprintf(
			"Rare offering: %d similar active listings against %d recent sales", sc.SimilarActiveCount, sc.HistoricalDemand))
	}

	ip := r.InvestmentPotential
	if ip.Available {
		switch ip.MarketComparison.Performance {
		case domain.PerformanceAbove:
			n.Insights = append(n.Insights, fmt.Sprintf(
				"Gross yield of %.2f%% beats the local average by %.2f points",
				deref(ip.GrossAnnualYield), deref(ip.MarketComparison.YieldDifference)))
		case domain.PerformanceBelow:
			n.Risks = append(n.Risks, fmt.Sprintf("Gross yield of %.2f%% trails the local average", deref(ip.GrossAnnualYield)))
		}
		if ip.RentSource == RentSourceEstimate {
			n.Actions = append(n.Actions, "Verify achievable rent with local letting agents")
		}
	}

	if ai := r.AgentIntelligence; ai != nil && ai.Available {
		switch ai.NegotiationPotential {
		case domain.NegotiationHigh:
			n.Actions = append(n.Actions, "Agent usually lists above market; open with a below-asking offer")
		case domain.NegotiationMedium:
			n.Actions = append(n.Actions, "Some room to negotiate with this agent")
		}
		if ai.LowConfidence {
			n.Risks = append(n.Risks, "Agent profile is based on very few listings")
		}
	}

	n.Insights = limit(n.Insights, maxInsights)
	n.Risks = limit(n.Risks, maxRisks)
	n.Actions = limit(n.Actions, maxActions)
	return n
}

func limit(s []string, n int) []string {
	if s == nil {
		return []string{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
