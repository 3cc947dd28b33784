package market

import (
	"math"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Rent sources.
const (
	RentSourceBenchmark = "benchmark"
	RentSourceEstimate  = "estimate"
)

// projectionYears is the horizon of the projected total return.
const projectionYears = 5

// ROIInputs are the location-level references for the return calculation.
// Nil fields fall back to policy defaults.
type ROIInputs struct {
	Benchmark        *domain.RentBenchmark
	AppreciationRate *float64
}

// CalculateROI estimates rent, yields, a five-year total return and the
// break-even horizon. The total return adds compounded appreciation to
// cumulative net yield; yield is not compounded into price growth. Yields
// are taken on the asking price; transaction costs only show up in the
// total investment required.
func CalculateROI(target *domain.PropertyRecord, in ROIInputs, p Policy) domain.InvestmentPotential {
	rp := p.ROI

	appreciation := rp.DefaultAppreciationRate
	if in.AppreciationRate != nil {
		appreciation = *in.AppreciationRate
	}
	ip := domain.InvestmentPotential{AppreciationRate: appreciation}

	price := target.AskingPrice
	if price <= 0 {
		return ip
	}
	ip.TotalInvestmentRequired = ptr(round2(price * (1 + rp.TransactionCostRatio)))

	area := target.UsableArea()
	var rent float64
	if in.Benchmark != nil && in.Benchmark.RentPerArea > 0 && area > 0 {
		rent = in.Benchmark.RentPerArea * area
		ip.RentSource = RentSourceBenchmark
	} else {
		rent = price * rp.FallbackMonthlyRentRatio
		ip.RentSource = RentSourceEstimate
	}
	if rent <= 0 {
		return ip
	}

	gross := rent * 12 / price * 100
	net := gross * (1 - rp.ExpenseRatio)
	years := float64(projectionYears)
	appreciated := (math.Pow(1+appreciation/100, years) - 1) * 100

	ip.Available = true
	ip.EstimatedMonthlyRent = ptr(round2(rent))
	ip.GrossAnnualYield = ptr(round2(gross))
	ip.NetAnnualYield = ptr(round2(net))
	ip.Projected5yTotalReturn = ptr(round2(appreciated + net*years))
	ip.InvestmentCategory = investmentCategory(net, rp)
	ip.RiskAdjustedReturn = ptr(round1(clamp(
		gross*rp.RiskYieldWeight+appreciation*rp.RiskAppreciationWeight, 0, 100)))

	if netMonthly := rent * (1 - rp.ExpenseRatio); netMonthly > 0 {
		ip.BreakEvenMonths = ptr(int(math.Ceil(price / netMonthly)))
	}

	avgYield := rp.DefaultMarketYield
	if in.Benchmark != nil && in.Benchmark.AverageYield != nil {
		avgYield = *in.Benchmark.AverageYield
	}
	diff := gross - avgYield
	ip.MarketComparison = domain.MarketComparison{
		Performance:     performance(diff, rp.AtMarketBand),
		YieldDifference: ptr(round2(diff)),
	}
	return ip
}

func performance(diff, band float64) domain.Performance {
	switch {
	case diff > band:
		return domain.PerformanceAbove
	case diff < -band:
		return domain.PerformanceBelow
	default:
		return domain.PerformanceAt
	}
}

func investmentCategory(net float64, rp ROIPolicy) string {
	switch {
	case net >= rp.ExcellentNetYield:
		return "excellent"
	case net >= rp.GoodNetYield:
		return "good"
	case net >= rp.ModerateNetYield:
		return "moderate"
	default:
		return "poor"
	}
}
