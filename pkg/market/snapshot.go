package market

import (
	"slices"
	"time"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// PriceSample is the part of a pool record the market aggregates need.
type PriceSample struct {
	ID           string           `json:"id"`
	PricePerArea float64          `json:"price_per_area"`
	ListedAt     time.Time        `json:"listed_at"`
	Features     []domain.Feature `json:"features,omitempty"`
}

// Snapshot is the cached statistical summary of a broad pool for one
// location and property type.
type Snapshot struct {
	LocationKey        string              `json:"location_key"`
	PropertyType       domain.PropertyType `json:"property_type"`
	SampleSize         int                 `json:"sample_size"`
	MedianPricePerArea *float64            `json:"median_price_per_area"`
	LowerQuartile      *float64            `json:"lower_quartile"`
	UpperQuartile      *float64            `json:"upper_quartile"`
	PriceMomentum30d   *float64            `json:"price_momentum_30d"`
	PriceMomentum90d   *float64            `json:"price_momentum_90d"`
	NewListings30d     int                 `json:"new_listings_30d"`
	NewListings90d     int                 `json:"new_listings_90d"`
	ComputedAt         time.Time           `json:"computed_at"`
	Samples            []PriceSample       `json:"samples,omitempty"`
}

// SamplesOf extracts price samples from pool records.
func SamplesOf(pool []domain.PropertyRecord) []PriceSample {
	out := make([]PriceSample, 0, len(pool))
	for i := range pool {
		out = append(out, PriceSample{
			ID:           pool[i].ID,
			PricePerArea: pool[i].PricePerArea(),
			ListedAt:     pool[i].ListedAt(),
			Features:     pool[i].FeatureFlags(),
		})
	}
	return out
}

// BuildSnapshot summarizes a broad pool. Quartiles are only reported once
// the pool reaches MinSampleSize priced samples.
func BuildSnapshot(
	locationKey string,
	pt domain.PropertyType,
	pool []domain.PropertyRecord,
	now time.Time,
	p Policy,
) Snapshot {
	samples := SamplesOf(pool)
	snap := Snapshot{
		LocationKey:  locationKey,
		PropertyType: pt,
		ComputedAt:   now,
		Samples:      samples,
	}

	prices := pricedValues(samples, "")
	snap.SampleSize = len(prices)
	if len(prices) >= p.MinSampleSize {
		snap.MedianPricePerArea = ptr(round2(sortedQuantile(prices, 0.5)))
		snap.LowerQuartile = ptr(round2(sortedQuantile(prices, 0.25)))
		snap.UpperQuartile = ptr(round2(sortedQuantile(prices, 0.75)))
	}

	w := p.Velocity.Window
	snap.NewListings30d = countBetween(samples, now.Add(-w), now)
	snap.NewListings90d = countBetween(samples, now.Add(-3*w), now)
	snap.PriceMomentum30d, _ = priceMomentum(samples, now, w, p.Velocity.MinWindowListings)
	snap.PriceMomentum90d, _ = priceMomentum(samples, now, 3*w, p.Velocity.MinWindowListings)
	return snap
}

// PricesExcluding returns the sorted positive prices per area of the
// snapshot, leaving out the record with the given ID.
func (s *Snapshot) PricesExcluding(id string) []float64 {
	return pricedValues(s.Samples, id)
}

// MedianExcluding returns the median price per area without the given
// record, and the number of samples it was computed from.
func (s *Snapshot) MedianExcluding(id string) (float64, int) {
	prices := pricedValues(s.Samples, id)
	return sortedQuantile(prices, 0.5), len(prices)
}

// FeatureShare returns the fraction of samples, other than id, carrying f.
// It is 0 for an empty snapshot.
func (s *Snapshot) FeatureShare(f domain.Feature, id string) float64 {
	var total, with int
	for i := range s.Samples {
		if s.Samples[i].ID == id {
			continue
		}
		total++
		if slices.Contains(s.Samples[i].Features, f) {
			with++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(with) / float64(total)
}

func pricedValues(samples []PriceSample, exclude string) []float64 {
	prices := make([]float64, 0, len(samples))
	for i := range samples {
		if samples[i].PricePerArea <= 0 || (exclude != "" && samples[i].ID == exclude) {
			continue
		}
		prices = append(prices, samples[i].PricePerArea)
	}
	slices.Sort(prices)
	return prices
}

// countBetween counts samples listed in [from, to).
func countBetween(samples []PriceSample, from, to time.Time) int {
	var n int
	for i := range samples {
		if inWindow(samples[i].ListedAt, from, to) {
			n++
		}
	}
	return n
}

func pricesBetween(samples []PriceSample, from, to time.Time) []float64 {
	var out []float64
	for i := range samples {
		if samples[i].PricePerArea > 0 && inWindow(samples[i].ListedAt, from, to) {
			out = append(out, samples[i].PricePerArea)
		}
	}
	return out
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}
