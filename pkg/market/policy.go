// Package market implements the analyzers that turn a property and its
// comparable pool into market position, momentum, scarcity, agent and
// return signals. Everything here is pure computation over records that
// were already fetched.
package market

import "time"

// Policy holds every threshold the analyzers use. It is a value type:
// callers build one with DefaultPolicy, adjust fields, and pass copies.
type Policy struct {
	MinSampleSize     int
	NarrowPoolLimit   int
	SizeBandTolerance float64

	Agent    AgentPolicy
	Velocity VelocityPolicy
	Scarcity ScarcityPolicy
	ROI      ROIPolicy
}

// AgentPolicy configures the agent performance analyzer.
type AgentPolicy struct {
	MinMarketSamples     int     `yaml:"min_market_samples"`
	HighNegotiationAbove float64 `yaml:"high_negotiation_above"`
	MidNegotiationAbove  float64 `yaml:"mid_negotiation_above"`
	PremiumAbove         float64 `yaml:"premium_above"`
	DiscountBelow        float64 `yaml:"discount_below"`
	ConsistencyPenalty   float64 `yaml:"consistency_penalty"`
	// Average days on market above which listings count as slow or steady.
	SlowDaysAbove     float64           `yaml:"slow_days_above"`
	SteadyDaysAbove   float64           `yaml:"steady_days_above"`
	InconsistentBelow float64           `yaml:"inconsistent_below"`
	Points            NegotiationPoints `yaml:"negotiation_points"`
}

// NegotiationPoints weighs the signals that add up to an agent's
// negotiation potential. A total of HighAt or more is high, MediumAt or
// more is medium.
type NegotiationPoints struct {
	HighPremium  float64 `yaml:"high_premium"`
	MidPremium   float64 `yaml:"mid_premium"`
	Discount     float64 `yaml:"discount"`
	Slow         float64 `yaml:"slow"`
	Steady       float64 `yaml:"steady"`
	Inconsistent float64 `yaml:"inconsistent"`
	HighAt       float64 `yaml:"high_at"`
	MediumAt     float64 `yaml:"medium_at"`
}

// VelocityPolicy configures the neighborhood velocity tracker.
type VelocityPolicy struct {
	Window              time.Duration `yaml:"window"`
	MinWindowListings   int           `yaml:"min_window_listings"`
	HighVelocity        float64       `yaml:"high_velocity"`
	LowVelocity         float64       `yaml:"low_velocity"`
	RisingMomentum      float64       `yaml:"rising_momentum"`
	FallingMomentum     float64       `yaml:"falling_momentum"`
	ExpansionMomentum   float64       `yaml:"expansion_momentum"`
	ContractionMomentum float64       `yaml:"contraction_momentum"`
}

// ScarcityPolicy configures the scarcity analyzer.
type ScarcityPolicy struct {
	SupplyBase         float64 `yaml:"supply_base"`
	ActivePenalty      float64 `yaml:"active_penalty"`
	DemandWeight       float64 `yaml:"demand_weight"`
	DemandCap          float64 `yaml:"demand_cap"`
	FeatureBonus       float64 `yaml:"feature_bonus"`
	FeatureCap         float64 `yaml:"feature_cap"`
	SoldLookbackMonths int     `yaml:"sold_lookback_months"`
	RareFeatureShare   float64 `yaml:"rare_feature_share"`
	SizeBandStep       float64 `yaml:"size_band_step"`
	RareAbove          int     `yaml:"rare_above"`
	UncommonAbove      int     `yaml:"uncommon_above"`
}

// ROIPolicy configures the return calculator.
type ROIPolicy struct {
	ExpenseRatio             float64 `yaml:"expense_ratio"`
	DefaultAppreciationRate  float64 `yaml:"default_appreciation_rate"`
	DefaultMarketYield       float64 `yaml:"default_market_yield"`
	FallbackMonthlyRentRatio float64 `yaml:"fallback_monthly_rent_ratio"`
	AtMarketBand             float64 `yaml:"at_market_band"`
	// Purchase costs on top of the asking price, as a share of it.
	TransactionCostRatio   float64 `yaml:"transaction_cost_ratio"`
	RiskYieldWeight        float64 `yaml:"risk_yield_weight"`
	RiskAppreciationWeight float64 `yaml:"risk_appreciation_weight"`
	// Minimum net yield for each investment category.
	ExcellentNetYield float64 `yaml:"excellent_net_yield"`
	GoodNetYield      float64 `yaml:"good_net_yield"`
	ModerateNetYield  float64 `yaml:"moderate_net_yield"`
}

// DefaultPolicy returns the production thresholds.
func DefaultPolicy() Policy {
	return Policy{
		MinSampleSize:     5,
		NarrowPoolLimit:   5,
		SizeBandTolerance: 0.30,
		Agent: AgentPolicy{
			MinMarketSamples:     3,
			HighNegotiationAbove: 10,
			MidNegotiationAbove:  3,
			PremiumAbove:         5,
			DiscountBelow:        -5,
			ConsistencyPenalty:   2,
			SlowDaysAbove:        60,
			SteadyDaysAbove:      30,
			InconsistentBelow:    70,
			Points: NegotiationPoints{
				HighPremium:  40,
				MidPremium:   25,
				Discount:     -20,
				Slow:         30,
				Steady:       15,
				Inconsistent: 20,
				HighAt:       40,
				MediumAt:     25,
			},
		},
		Velocity: VelocityPolicy{
			Window:              30 * 24 * time.Hour,
			MinWindowListings:   2,
			HighVelocity:        20,
			LowVelocity:         -20,
			RisingMomentum:      5,
			FallingMomentum:     -5,
			ExpansionMomentum:   5,
			ContractionMomentum: -5,
		},
		Scarcity: ScarcityPolicy{
			SupplyBase:         70,
			ActivePenalty:      10,
			DemandWeight:       10,
			DemandCap:          30,
			FeatureBonus:       10,
			FeatureCap:         20,
			SoldLookbackMonths: 6,
			RareFeatureShare:   0.20,
			SizeBandStep:       10,
			RareAbove:          80,
			UncommonAbove:      50,
		},
		ROI: ROIPolicy{
			ExpenseRatio:             0.25,
			DefaultAppreciationRate:  5.0,
			DefaultMarketYield:       5.5,
			FallbackMonthlyRentRatio: 0.0065,
			AtMarketBand:             0.5,
			TransactionCostRatio:     0.03,
			RiskYieldWeight:          10,
			RiskAppreciationWeight:   2,
			ExcellentNetYield:        7,
			GoodNetYield:             5,
			ModerateNetYield:         3,
		},
	}
}
