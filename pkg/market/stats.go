package market

import (
	"math"
	"slices"
)

// median returns the median of vals, or 0 for an empty slice. vals is not
// modified.
func median(vals []float64) float64 {
	return quantile(vals, 0.5)
}

// quantile returns the q-th quantile of vals using linear interpolation
// between closest ranks.
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)
	return sortedQuantile(sorted, q)
}

func sortedQuantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// percentileBelow returns the share of sorted strictly below v, in percent,
// rounded to one decimal place.
func percentileBelow(sorted []float64, v float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx, _ := slices.BinarySearch(sorted, v)
	return round1(float64(idx) / float64(len(sorted)) * 100)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stddev is the population standard deviation.
func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	var sq float64
	for _, v := range vals {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(vals)))
}

// pctChange returns (to-from)/from*100 and false when from is zero.
func pctChange(from, to float64) (float64, bool) {
	if from == 0 {
		return 0, false
	}
	return (to - from) / from * 100, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr[T any](v T) *T {
	return &v
}
