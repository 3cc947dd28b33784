package market

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// samplesAt returns one sample per day offset, all at the same price per area.
func samplesAt(ppa float64, daysAgo ...int) []PriceSample {
	out := make([]PriceSample, 0, len(daysAgo))
	for _, d := range daysAgo {
		out = append(out, PriceSample{
			ID:           fmt.Sprintf("s-%v-%d", ppa, d),
			PricePerArea: ppa,
			ListedAt:     testNow.AddDate(0, 0, -d),
		})
	}
	return out
}

func TestTrackVelocity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		samples       []PriceSample
		wantTrend     *float64
		wantMomentum  *float64
		wantTemp      domain.Temperature
		wantTiming    string
		wantPhase     domain.Phase
		wantAvailable bool
		wantNotes     int
	}{
		{
			name: "accelerating market is hot",
			samples: append(
				samplesAt(2200, 1, 2, 3, 4, 5, 6),
				samplesAt(2000, 31, 32, 33, 34)...,
			),
			wantTrend:     ptr(50.0),
			wantMomentum:  ptr(10.0),
			wantTemp:      domain.TemperatureHot,
			wantTiming:    domain.TimingActFast,
			wantPhase:     domain.PhaseExpansion,
			wantAvailable: true,
			wantNotes:     1,
		},
		{
			name: "slowing market is cool",
			samples: append(
				samplesAt(1800, 2, 3),
				samplesAt(2000, 35, 36, 37, 38, 39)...,
			),
			wantTrend:     ptr(-60.0),
			wantMomentum:  ptr(-10.0),
			wantTemp:      domain.TemperatureCool,
			wantTiming:    domain.TimingWaitAndNegotiate,
			wantPhase:     domain.PhaseContraction,
			wantAvailable: true,
			wantNotes:     1,
		},
		{
			name: "flat market is moderate",
			samples: append(
				samplesAt(2000, 1, 2, 3, 4),
				samplesAt(2000, 40, 41, 42, 43)...,
			),
			wantTrend:     ptr(0.0),
			wantMomentum:  ptr(0.0),
			wantTemp:      domain.TemperatureModerate,
			wantTiming:    domain.TimingNeutral,
			wantPhase:     domain.PhaseStable,
			wantAvailable: true,
			wantNotes:     1,
		},
		{
			name:          "sparse market is unavailable",
			samples:       samplesAt(2000, 3),
			wantTemp:      domain.TemperatureModerate,
			wantTiming:    domain.TimingNeutral,
			wantPhase:     domain.PhaseStable,
			wantAvailable: false,
			wantNotes:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mm := TrackVelocity(tt.samples, testNow, DefaultPolicy())

			assert.Equal(t, tt.wantTemp, mm.MarketTemperature)
			assert.Equal(t, tt.wantTiming, mm.TimingRecommendation)
			assert.Equal(t, tt.wantPhase, mm.MarketPhase)
			assert.Equal(t, tt.wantAvailable, mm.Available)
			assert.Len(t, mm.Notes, tt.wantNotes)

			if tt.wantTrend == nil {
				assert.Nil(t, mm.ListingVelocityTrend)
			} else {
				require.NotNil(t, mm.ListingVelocityTrend)
				assert.InDelta(t, *tt.wantTrend, *mm.ListingVelocityTrend, 1e-9)
			}
			if tt.wantMomentum == nil {
				assert.Nil(t, mm.PriceMomentum30d)
			} else {
				require.NotNil(t, mm.PriceMomentum30d)
				assert.InDelta(t, *tt.wantMomentum, *mm.PriceMomentum30d, 1e-9)
			}
		})
	}
}

func TestTrackVelocity_SingleListingWindowIsNullNotHundredPercent(t *testing.T) {
	t.Parallel()

	samples := append(samplesAt(3000, 1), samplesAt(1500, 31, 32)...)
	mm := TrackVelocity(samples, testNow, DefaultPolicy())

	assert.Nil(t, mm.PriceMomentum30d)
	assert.Contains(t, mm.Notes[0], "price_momentum_30d")
}

func TestTrackVelocity_FutureListingsIgnored(t *testing.T) {
	t.Parallel()

	samples := []PriceSample{{ID: "future", PricePerArea: 2000, ListedAt: testNow.Add(time.Hour)}}
	mm := TrackVelocity(samples, testNow, DefaultPolicy())
	assert.Zero(t, mm.NewListings30d)
}

func TestTemperatureTable(t *testing.T) {
	t.Parallel()

	vp := DefaultPolicy().Velocity
	tests := []struct {
		velocity *float64
		momentum *float64
		want     domain.Temperature
	}{
		{ptr(25.0), ptr(6.0), domain.TemperatureHot},
		{ptr(25.0), ptr(0.0), domain.TemperatureWarm},
		{ptr(25.0), ptr(-6.0), domain.TemperatureModerate},
		{ptr(0.0), ptr(6.0), domain.TemperatureWarm},
		{nil, nil, domain.TemperatureModerate},
		{ptr(0.0), ptr(-6.0), domain.TemperatureCool},
		{ptr(-25.0), ptr(6.0), domain.TemperatureModerate},
		{ptr(-25.0), nil, domain.TemperatureCool},
		{ptr(-25.0), ptr(-6.0), domain.TemperatureCool},
	}

	for _, tt := range tests {
		got := temperatureTable[classifyVelocity(tt.velocity, vp)][classifyMomentum(tt.momentum, vp)]
		assert.Equal(t, tt.want, got)
	}
}
