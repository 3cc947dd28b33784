package market

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// poolWithPrices returns one 100 m² comparable per price per area.
func poolWithPrices(perArea ...float64) []domain.PropertyRecord {
	pool := make([]domain.PropertyRecord, 0, len(perArea))
	for i, ppa := range perArea {
		pool = append(pool, rec(fmt.Sprintf("c%d", i), ppa*100, 100, i+1))
	}
	return pool
}

func snapshotOf(pool []domain.PropertyRecord) Snapshot {
	return BuildSnapshot("tirana", domain.PropertyApartment, pool, testNow, DefaultPolicy())
}

func TestPosition_BelowMedianScenario(t *testing.T) {
	t.Parallel()

	target := rec("target", 100000, 50, 0)
	snap := snapshotOf(poolWithPrices(2100, 2200, 2400, 2500, 2500, 2600, 2800, 3000))

	pos := Position(&target, &snap, DefaultPolicy())

	assert.True(t, pos.Available)
	assert.Equal(t, 8, pos.SampleSize)
	assert.Equal(t, domain.PositionBottomQuartile, pos.PositionCategory)
	require.NotNil(t, pos.MarketPercentile)
	assert.InDelta(t, 0.0, *pos.MarketPercentile, 1e-9)
	require.NotNil(t, pos.PriceAdvantagePercent)
	assert.InDelta(t, -20.0, *pos.PriceAdvantagePercent, 1e-9)
	require.NotNil(t, pos.PotentialSavings)
	assert.InDelta(t, 25000.0, *pos.PotentialSavings, 1e-9)
	require.NotNil(t, pos.MedianMarketPrice)
	assert.InDelta(t, 125000.0, *pos.MedianMarketPrice, 1e-9)
	require.NotNil(t, pos.PriceRange)
	assert.InDelta(t, 2100.0, pos.PriceRange.Min, 1e-9)
	assert.InDelta(t, 3000.0, pos.PriceRange.Max, 1e-9)
}

func TestPosition_SavingsFlooredAtZero(t *testing.T) {
	t.Parallel()

	target := rec("target", 150000, 50, 0)
	snap := snapshotOf(poolWithPrices(2000, 2000, 2000, 2000, 2000))

	pos := Position(&target, &snap, DefaultPolicy())

	require.True(t, pos.Available)
	assert.InDelta(t, 0.0, *pos.PotentialSavings, 1e-9)
	assert.InDelta(t, 50.0, *pos.PriceAdvantagePercent, 1e-9)
	assert.InDelta(t, 100.0, *pos.MarketPercentile, 1e-9)
	assert.Equal(t, domain.PositionTopQuartile, pos.PositionCategory)
}

func TestPosition_SampleSizeBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prices    []float64
		wantCat   domain.PositionCategory
		available bool
	}{
		{
			name:    "four comparables",
			prices:  []float64{1800, 1900, 2100, 2200},
			wantCat: domain.PositionInsufficientData,
		},
		{
			name:      "five comparables",
			prices:    []float64{1800, 1900, 2100, 2200, 2300},
			wantCat:   domain.PositionLowMid,
			available: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := rec("target", 100000, 50, 0)
			snap := snapshotOf(poolWithPrices(tt.prices...))
			pos := Position(&target, &snap, DefaultPolicy())

			assert.Equal(t, tt.wantCat, pos.PositionCategory)
			assert.Equal(t, tt.available, pos.Available)
			assert.Equal(t, len(tt.prices), pos.SampleSize)
			if !tt.available {
				assert.Nil(t, pos.MarketPercentile)
				assert.Nil(t, pos.PotentialSavings)
				assert.Nil(t, pos.PriceAdvantagePercent)
			}
		})
	}
}

func TestPosition_ExcludesTargetFromCachedSnapshot(t *testing.T) {
	t.Parallel()

	pool := poolWithPrices(1800, 1900, 2100, 2200, 2300)
	snap := snapshotOf(pool)

	// c0 is part of the snapshot; analyzing it leaves four samples.
	target := pool[0]
	pos := Position(&target, &snap, DefaultPolicy())
	assert.Equal(t, 4, pos.SampleSize)
	assert.Equal(t, domain.PositionInsufficientData, pos.PositionCategory)
}

func TestPosition_ZeroAreaTarget(t *testing.T) {
	t.Parallel()

	target := rec("target", 100000, 0, 0)
	snap := snapshotOf(poolWithPrices(1800, 1900, 2100, 2200, 2300))

	pos := Position(&target, &snap, DefaultPolicy())

	assert.False(t, pos.Available)
	assert.Equal(t, domain.PositionInsufficientData, pos.PositionCategory)
	assert.NotNil(t, pos.MedianPricePerArea)
	assert.Nil(t, pos.MedianMarketPrice)
	assert.Nil(t, pos.PotentialSavings)
}

func TestCategorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pct  float64
		want domain.PositionCategory
	}{
		{0, domain.PositionBottomQuartile},
		{24.9, domain.PositionBottomQuartile},
		{25, domain.PositionLowMid},
		{49.9, domain.PositionLowMid},
		{50, domain.PositionHighMid},
		{74.9, domain.PositionHighMid},
		{75, domain.PositionTopQuartile},
		{100, domain.PositionTopQuartile},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.pct), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, categorize(tt.pct))
		})
	}
}

func TestBuildSnapshot(t *testing.T) {
	t.Parallel()

	snap := snapshotOf(poolWithPrices(1000, 2000, 3000, 4000, 5000))
	assert.Equal(t, 5, snap.SampleSize)
	require.NotNil(t, snap.MedianPricePerArea)
	assert.InDelta(t, 3000.0, *snap.MedianPricePerArea, 1e-9)
	assert.InDelta(t, 2000.0, *snap.LowerQuartile, 1e-9)
	assert.InDelta(t, 4000.0, *snap.UpperQuartile, 1e-9)
	assert.Equal(t, 5, snap.NewListings30d)

	small := snapshotOf(poolWithPrices(1000, 2000))
	assert.Nil(t, small.MedianPricePerArea)
	assert.Nil(t, small.LowerQuartile)
}
