package market

import (
	"math"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Position places target within the snapshot's price distribution. Pools
// smaller than MinSampleSize, or targets without a price per area, produce
// an insufficient_data position that is not available for scoring.
func Position(target *domain.PropertyRecord, snap *Snapshot, p Policy) domain.MarketPosition {
	prices := snap.PricesExcluding(target.ID)
	pos := domain.MarketPosition{
		PositionCategory: domain.PositionInsufficientData,
		SampleSize:       len(prices),
	}
	if len(prices) < p.MinSampleSize {
		return pos
	}

	med := sortedQuantile(prices, 0.5)
	pos.MedianPricePerArea = ptr(round2(med))
	pos.PriceRange = &domain.PriceRange{
		Min: round2(prices[0]),
		Max: round2(prices[len(prices)-1]),
	}

	area := target.UsableArea()
	if area > 0 {
		pos.MedianMarketPrice = ptr(round2(med * area))
	}

	ppa := target.PricePerArea()
	if ppa <= 0 || med <= 0 {
		return pos
	}

	pct := percentileBelow(prices, ppa)
	advantage, _ := pctChange(med, ppa)
	savings := math.Max(0, med*area-target.AskingPrice)

	pos.Available = true
	pos.MarketPercentile = ptr(pct)
	pos.PositionCategory = categorize(pct)
	pos.PriceAdvantagePercent = ptr(round2(advantage))
	pos.PotentialSavings = ptr(round2(savings))
	return pos
}

func categorize(pct float64) domain.PositionCategory {
	switch {
	case pct < 25:
		return domain.PositionBottomQuartile
	case pct < 50:
		return domain.PositionLowMid
	case pct < 75:
		return domain.PositionHighMid
	default:
		return domain.PositionTopQuartile
	}
}
