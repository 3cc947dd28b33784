package market

import (
	"fmt"
	"math"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// SizeBand is the usable-area range used for supply counts.
type SizeBand struct {
	Key float64 `json:"key"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// String renders the band as a cache key fragment.
func (b SizeBand) String() string {
	if b.Key == 0 {
		return "any"
	}
	return fmt.Sprintf("%.0f", b.Key)
}

// Bounded reports whether the band restricts area at all.
func (b SizeBand) Bounded() bool {
	return b.Key > 0
}

// SizeBandFor rounds the usable area to the policy step so neighboring
// sizes share a band. A zero area yields an unbounded band.
func SizeBandFor(usableArea float64, p Policy) SizeBand {
	step := p.Scarcity.SizeBandStep
	if usableArea <= 0 || step <= 0 {
		return SizeBand{}
	}
	key := math.Max(step, math.Round(usableArea/step)*step)
	return SizeBand{
		Key: key,
		Min: key * (1 - p.SizeBandTolerance),
		Max: key * (1 + p.SizeBandTolerance),
	}
}

// SupplyCounts are the active and recently sold listing counts for a
// segment.
type SupplyCounts struct {
	Active int `json:"active"`
	Sold   int `json:"sold"`
}

// AnalyzeScarcity scores supply against historical demand and adds a
// bonus for features the comparable pool rarely has.
func AnalyzeScarcity(target *domain.PropertyRecord, counts SupplyCounts, snap *Snapshot, p Policy) domain.Scarcity {
	sp := p.Scarcity

	factors := make([]domain.Feature, 0)
	for _, f := range target.FeatureFlags() {
		if snap.FeatureShare(f, target.ID) < sp.RareFeatureShare {
			factors = append(factors, f)
		}
	}

	active := max(counts.Active, 0)
	sold := max(counts.Sold, 0)

	supply := math.Max(0, sp.SupplyBase-sp.ActivePenalty*float64(active))
	demand := math.Min(sp.DemandCap, sp.DemandWeight*float64(sold)/float64(max(active, 1)))
	bonus := math.Min(sp.FeatureCap, sp.FeatureBonus*float64(len(factors)))
	score := int(math.Round(clamp(supply+demand+bonus, 0, 100)))

	return domain.Scarcity{
		Available:          true,
		ScarcityScore:      score,
		SimilarActiveCount: active,
		HistoricalDemand:   sold,
		ScarcityCategory:   scarcityCategory(score, sp),
		UniquenessFactors:  factors,
	}
}

func scarcityCategory(score int, sp ScarcityPolicy) domain.ScarcityCategory {
	switch {
	case score >= sp.RareAbove:
		return domain.ScarcityRare
	case score >= sp.UncommonAbove:
		return domain.ScarcityUncommon
	default:
		return domain.ScarcityCommon
	}
}
