package market

import (
	"fmt"
	"time"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

type velocityClass int

const (
	velocityLow velocityClass = iota
	velocityNormal
	velocityHigh
)

type momentumClass int

const (
	momentumFalling momentumClass = iota
	momentumFlat
	momentumRising
)

// temperatureTable is indexed by [velocity][momentum].
var temperatureTable = [3][3]domain.Temperature{
	velocityLow:    {domain.TemperatureCool, domain.TemperatureCool, domain.TemperatureModerate},
	velocityNormal: {domain.TemperatureCool, domain.TemperatureModerate, domain.TemperatureWarm},
	velocityHigh:   {domain.TemperatureModerate, domain.TemperatureWarm, domain.TemperatureHot},
}

var timingByTemperature = map[domain.Temperature]string{
	domain.TemperatureHot:      domain.TimingActFast,
	domain.TemperatureWarm:     domain.TimingGood,
	domain.TemperatureModerate: domain.TimingNeutral,
	domain.TemperatureCool:     domain.TimingWaitAndNegotiate,
}

// TrackVelocity computes listing velocity and price momentum over time
// windows ending at now. Windows with too few listings report null values
// and a note instead of a spurious percentage.
func TrackVelocity(samples []PriceSample, now time.Time, p Policy) domain.MarketMomentum {
	vp := p.Velocity
	w := vp.Window

	mm := domain.MarketMomentum{
		NewListings30d:         countBetween(samples, now.Add(-w), now),
		NewListingsPrevious30d: countBetween(samples, now.Add(-2*w), now.Add(-w)),
		NewListings90d:         countBetween(samples, now.Add(-3*w), now),
	}

	if trend, ok := pctChange(float64(mm.NewListingsPrevious30d), float64(mm.NewListings30d)); ok {
		mm.ListingVelocityTrend = ptr(round2(trend))
	} else {
		mm.Notes = append(mm.Notes, "listing_velocity_trend: no listings in the previous window")
	}

	var note string
	mm.PriceMomentum30d, note = priceMomentum(samples, now, w, vp.MinWindowListings)
	if note != "" {
		mm.Notes = append(mm.Notes, "price_momentum_30d: "+note)
	}
	mm.PriceMomentum90d, note = priceMomentum(samples, now, 3*w, vp.MinWindowListings)
	if note != "" {
		mm.Notes = append(mm.Notes, "price_momentum_90d: "+note)
	}

	momentum := mm.PriceMomentum30d
	if momentum == nil {
		momentum = mm.PriceMomentum90d
	}

	mm.MarketTemperature = temperatureTable[classifyVelocity(mm.ListingVelocityTrend, vp)][classifyMomentum(momentum, vp)]
	mm.TimingRecommendation = timingByTemperature[mm.MarketTemperature]
	mm.MarketPhase = phase(momentum, vp)
	mm.Available = mm.ListingVelocityTrend != nil || momentum != nil
	return mm
}

// priceMomentum compares the median price per area of [now-span, now) with
// the span before it.
func priceMomentum(samples []PriceSample, now time.Time, span time.Duration, minListings int) (*float64, string) {
	cur := pricesBetween(samples, now.Add(-span), now)
	prev := pricesBetween(samples, now.Add(-2*span), now.Add(-span))
	if len(cur) < minListings || len(prev) < minListings {
		return nil, fmt.Sprintf("fewer than %d listings in a window (current %d, previous %d)",
			minListings, len(cur), len(prev))
	}
	change, ok := pctChange(median(prev), median(cur))
	if !ok {
		return nil, "previous window median is zero"
	}
	return ptr(round2(change)), ""
}

func classifyVelocity(trend *float64, vp VelocityPolicy) velocityClass {
	switch {
	case trend == nil:
		return velocityNormal
	case *trend >= vp.HighVelocity:
		return velocityHigh
	case *trend <= vp.LowVelocity:
		return velocityLow
	default:
		return velocityNormal
	}
}

func classifyMomentum(m *float64, vp VelocityPolicy) momentumClass {
	switch {
	case m == nil:
		return momentumFlat
	case *m >= vp.RisingMomentum:
		return momentumRising
	case *m <= vp.FallingMomentum:
		return momentumFalling
	default:
		return momentumFlat
	}
}

func phase(m *float64, vp VelocityPolicy) domain.Phase {
	switch {
	case m == nil:
		return domain.PhaseStable
	case *m >= vp.ExpansionMomentum:
		return domain.PhaseExpansion
	case *m <= vp.ContractionMomentum:
		return domain.PhaseContraction
	default:
		return domain.PhaseStable
	}
}
