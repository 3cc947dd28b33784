package market

import (
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// AgentObservation pairs one agent listing with the median of its own market.
type AgentObservation struct {
	PricePerArea  float64
	MarketMedian  float64
	MarketSamples int
	// DaysOnMarket is nil when the listing has no listing time.
	DaysOnMarket *float64
}

// AnalyzeAgent derives the pricing profile of an agent from the price
// deviations of their listings against each listing's market median.
// Observations without a price, or whose market has fewer than
// MinMarketSamples samples, are skipped for pricing; days on market are
// averaged over every dated listing.
func AnalyzeAgent(portfolioSize int, obs []AgentObservation, p Policy) domain.AgentIntelligence {
	ap := p.Agent
	devs := make([]float64, 0, len(obs))
	days := make([]float64, 0, len(obs))
	for _, o := range obs {
		if o.DaysOnMarket != nil {
			days = append(days, *o.DaysOnMarket)
		}
		if o.PricePerArea <= 0 || o.MarketMedian <= 0 || o.MarketSamples < ap.MinMarketSamples {
			continue
		}
		d, _ := pctChange(o.MarketMedian, o.PricePerArea)
		devs = append(devs, d)
	}

	ai := domain.AgentIntelligence{
		PortfolioSize:         portfolioSize,
		ComparedListingsCount: len(devs),
		LowConfidence:         len(devs) < 2,
	}
	if len(days) > 0 {
		ai.AgentVelocity = ptr(round1(mean(days)))
	}
	if len(devs) == 0 {
		return ai
	}

	avg := round2(mean(devs))
	ai.Available = true
	ai.AvgPriceVsMarket = ptr(avg)
	ai.PricingStyle = pricingStyle(avg, ap)
	if len(devs) >= 2 {
		ai.ConsistencyScore = ptr(round1(clamp(100-ap.ConsistencyPenalty*stddev(devs), 0, 100)))
	}
	ai.NegotiationPotential = negotiation(avg, ai.AgentVelocity, ai.ConsistencyScore, ap)
	return ai
}

// negotiation adds up the pricing, velocity and consistency signals. Pricing
// alone maps above HighNegotiationAbove to high and above
// MidNegotiationAbove to medium; slow sales and erratic pricing add room.
func negotiation(avg float64, velocity, consistency *float64, ap AgentPolicy) domain.Negotiation {
	pts := ap.Points
	var total float64

	switch {
	case avg > ap.HighNegotiationAbove:
		total += pts.HighPremium
	case avg > ap.MidNegotiationAbove:
		total += pts.MidPremium
	case avg < ap.DiscountBelow:
		total += pts.Discount
	}

	if velocity != nil {
		switch {
		case *velocity > ap.SlowDaysAbove:
			total += pts.Slow
		case *velocity > ap.SteadyDaysAbove:
			total += pts.Steady
		}
	}

	if consistency != nil && *consistency < ap.InconsistentBelow {
		total += pts.Inconsistent
	}

	switch {
	case total >= pts.HighAt:
		return domain.NegotiationHigh
	case total >= pts.MediumAt:
		return domain.NegotiationMedium
	default:
		return domain.NegotiationLow
	}
}

func pricingStyle(avg float64, ap AgentPolicy) domain.PricingStyle {
	switch {
	case avg > ap.PremiumAbove:
		return domain.PricingPremium
	case avg < ap.DiscountBelow:
		return domain.PricingDiscount
	default:
		return domain.PricingMarket
	}
}
