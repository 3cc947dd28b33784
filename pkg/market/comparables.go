package market

import (
	"cmp"
	"slices"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Pools holds the two comparable pool variants for a target.
type Pools struct {
	// Narrow is size-banded, most recent first, capped at NarrowPoolLimit.
	Narrow []domain.PropertyRecord
	// Broad has the same filter without size band or cap.
	Broad []domain.PropertyRecord
}

// SelectComparables filters candidates down to the records comparable with
// target. Candidates may come straight from storage: the location, type,
// status and price filters are re-applied here, the target is excluded and
// duplicates are dropped. Empty pools are valid.
func SelectComparables(target *domain.PropertyRecord, candidates []domain.PropertyRecord, p Policy) Pools {
	loc := target.LocationKey()
	seen := make(map[string]struct{}, len(candidates))
	broad := make([]domain.PropertyRecord, 0, len(candidates))

	for i := range candidates {
		c := &candidates[i]
		if c.ID == target.ID || c.Status != domain.StatusCompleted || c.AskingPrice <= 0 {
			continue
		}
		if c.PropertyType != target.PropertyType || c.LocationKey() != loc {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		broad = append(broad, *c)
	}

	slices.SortStableFunc(broad, func(a, b domain.PropertyRecord) int {
		if c := b.ListedAt().Compare(a.ListedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return Pools{
		Narrow: narrowPool(target.UsableArea(), broad, p),
		Broad:  broad,
	}
}

// narrowPool takes the most recent records from the already ordered broad
// pool whose internal or total area falls inside the size band. A target
// without a usable area skips the band.
func narrowPool(area float64, broad []domain.PropertyRecord, p Policy) []domain.PropertyRecord {
	limit := p.NarrowPoolLimit
	narrow := make([]domain.PropertyRecord, 0, min(limit, len(broad)))
	lo, hi := area*(1-p.SizeBandTolerance), area*(1+p.SizeBandTolerance)

	for i := range broad {
		if len(narrow) >= limit {
			break
		}
		if area > 0 && !inBand(broad[i].InternalArea, lo, hi) && !inBand(broad[i].TotalArea, lo, hi) {
			continue
		}
		narrow = append(narrow, broad[i])
	}
	return narrow
}

func inBand(v, lo, hi float64) bool {
	return v > 0 && v >= lo && v <= hi
}

// Summaries renders pool members as compact comparable summaries.
func Summaries(pool []domain.PropertyRecord) []domain.ComparableSummary {
	out := make([]domain.ComparableSummary, 0, len(pool))
	for i := range pool {
		out = append(out, domain.ComparableSummary{
			ID:           pool[i].ID,
			AskingPrice:  pool[i].AskingPrice,
			UsableArea:   pool[i].UsableArea(),
			PricePerArea: round2(pool[i].PricePerArea()),
			ListedAt:     pool[i].ListedAt(),
		})
	}
	return out
}
