package domain

import "time"

// Recommendation is the investment verdict derived from the score.
type Recommendation string

// Recommendation constants.
const (
	RecommendStrongBuy        Recommendation = "strong_buy"
	RecommendBuy              Recommendation = "buy"
	RecommendHold             Recommendation = "hold"
	RecommendAvoid            Recommendation = "avoid"
	RecommendInsufficientData Recommendation = "insufficient_data"
)

// PositionCategory buckets a percentile into quartiles.
type PositionCategory string

// Position category constants.
const (
	PositionBottomQuartile   PositionCategory = "bottom_quartile"
	PositionLowMid           PositionCategory = "low_mid"
	PositionHighMid          PositionCategory = "high_mid"
	PositionTopQuartile      PositionCategory = "top_quartile"
	PositionInsufficientData PositionCategory = "insufficient_data"
)

// Negotiation is the estimated room for negotiating with an agent.
type Negotiation string

// Negotiation constants.
const (
	NegotiationLow    Negotiation = "low"
	NegotiationMedium Negotiation = "medium"
	NegotiationHigh   Negotiation = "high"
)

// PricingStyle describes how an agent prices relative to the market.
type PricingStyle string

// Pricing style constants.
const (
	PricingPremium  PricingStyle = "premium"
	PricingMarket   PricingStyle = "market"
	PricingDiscount PricingStyle = "discount"
)

// Temperature is the combined velocity and momentum label of a market.
type Temperature string

// Temperature constants.
const (
	TemperatureHot      Temperature = "hot"
	TemperatureWarm     Temperature = "warm"
	TemperatureModerate Temperature = "moderate"
	TemperatureCool     Temperature = "cool"
)

// Phase is the market cycle phase.
type Phase string

// Phase constants.
const (
	PhaseExpansion   Phase = "expansion"
	PhaseStable      Phase = "stable"
	PhaseContraction Phase = "contraction"
)

// Timing recommendations.
const (
	TimingActFast          = "act_fast"
	TimingGood             = "good_timing"
	TimingNeutral          = "neutral"
	TimingWaitAndNegotiate = "wait_and_negotiate"
)

// ScarcityCategory buckets a scarcity score.
type ScarcityCategory string

// Scarcity category constants.
const (
	ScarcityRare     ScarcityCategory = "rare"
	ScarcityUncommon ScarcityCategory = "uncommon"
	ScarcityCommon   ScarcityCategory = "common"
)

// Performance compares a yield with the location average.
type Performance string

// Performance constants.
const (
	PerformanceAbove Performance = "above_market"
	PerformanceAt    Performance = "at_market"
	PerformanceBelow Performance = "below_market"
)

// Component names used in data quality reports and score breakdowns.
const (
	ComponentMarketPosition      = "market_position"
	ComponentAgentIntelligence   = "agent_intelligence"
	ComponentMarketMomentum      = "market_momentum"
	ComponentScarcity            = "scarcity"
	ComponentInvestmentPotential = "investment_potential"
)

// AnalysisResult is the output of one analysis invocation.
type AnalysisResult struct {
	PropertyID          string              `json:"property_id"`
	InvestmentScore     *int                `json:"investment_score"`
	Recommendation      Recommendation      `json:"recommendation"`
	MarketPosition      MarketPosition      `json:"market_position"`
	AgentIntelligence   *AgentIntelligence  `json:"agent_intelligence"`
	MarketMomentum      MarketMomentum      `json:"market_momentum"`
	Scarcity            Scarcity            `json:"scarcity"`
	InvestmentPotential InvestmentPotential `json:"investment_potential"`
	ScoreBreakdown      ScoreBreakdown      `json:"score_breakdown"`
	DataQuality         DataQuality         `json:"data_quality"`

	Comparables    []ComparableSummary `json:"comparables"`
	MarketInsights []string            `json:"market_insights"`
	RiskFactors    []string            `json:"risk_factors"`
	ActionItems    []string            `json:"action_items"`
	DataSources    DataSources         `json:"data_sources"`
}

// Insufficient reports whether no sub-score could be computed.
func (r *AnalysisResult) Insufficient() bool {
	return r.Recommendation == RecommendInsufficientData
}

// MarketPosition places the target within its broad comparable pool.
type MarketPosition struct {
	Available             bool             `json:"available"`
	MarketPercentile      *float64         `json:"market_percentile"`
	PositionCategory      PositionCategory `json:"position_category"`
	PotentialSavings      *float64         `json:"potential_savings"`
	SampleSize            int              `json:"sample_size"`
	PriceAdvantagePercent *float64         `json:"price_advantage_percent"`
	MedianMarketPrice     *float64         `json:"median_market_price"`
	MedianPricePerArea    *float64         `json:"median_price_per_area"`
	PriceRange            *PriceRange      `json:"price_range,omitempty"`
}

// PriceRange is the spread of price per area within a pool.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AgentIntelligence summarizes the listing agent's pricing behavior.
type AgentIntelligence struct {
	Available             bool         `json:"available"`
	PortfolioSize         int          `json:"agent_portfolio_size"`
	AvgPriceVsMarket      *float64     `json:"agent_avg_price_vs_market"`
	ConsistencyScore      *float64     `json:"agent_consistency_score"`
	AgentVelocity         *float64     `json:"agent_velocity"`
	NegotiationPotential  Negotiation  `json:"negotiation_potential,omitempty"`
	PricingStyle          PricingStyle `json:"agent_pricing_style,omitempty"`
	LowConfidence         bool         `json:"low_confidence"`
	ComparedListingsCount int          `json:"compared_listings"`
}

// MarketMomentum describes listing velocity and price momentum for a market.
type MarketMomentum struct {
	Available              bool        `json:"available"`
	ListingVelocityTrend   *float64    `json:"listing_velocity_trend"`
	PriceMomentum30d       *float64    `json:"price_momentum_30d"`
	PriceMomentum90d       *float64    `json:"price_momentum_90d"`
	MarketTemperature      Temperature `json:"market_temperature"`
	TimingRecommendation   string      `json:"timing_recommendation"`
	MarketPhase            Phase       `json:"market_phase"`
	NewListings30d         int         `json:"new_listings_30d"`
	NewListingsPrevious30d int         `json:"new_listings_previous_30d"`
	NewListings90d         int         `json:"new_listings_90d"`
	Notes                  []string    `json:"notes,omitempty"`
}

// Scarcity scores how undersupplied the target's segment is.
type Scarcity struct {
	Available          bool             `json:"available"`
	ScarcityScore      int              `json:"scarcity_score"`
	SimilarActiveCount int              `json:"similar_active_count"`
	HistoricalDemand   int              `json:"historical_demand"`
	ScarcityCategory   ScarcityCategory `json:"scarcity_category"`
	UniquenessFactors  []Feature        `json:"uniqueness_factors"`
}

// InvestmentPotential holds rental yield and return projections.
type InvestmentPotential struct {
	Available               bool             `json:"available"`
	GrossAnnualYield        *float64         `json:"gross_annual_yield"`
	NetAnnualYield          *float64         `json:"net_annual_yield"`
	EstimatedMonthlyRent    *float64         `json:"estimated_monthly_rent"`
	Projected5yTotalReturn  *float64         `json:"projected_5y_total_return"`
	BreakEvenMonths         *int             `json:"break_even_months"`
	TotalInvestmentRequired *float64         `json:"total_investment_required"`
	RiskAdjustedReturn      *float64         `json:"risk_adjusted_return"`
	MarketComparison        MarketComparison `json:"market_comparison"`
	AppreciationRate        float64          `json:"appreciation_rate"`
	RentSource              string           `json:"rent_source"`
	InvestmentCategory      string           `json:"investment_category,omitempty"`
}

// MarketComparison compares the target's yield with the location average.
type MarketComparison struct {
	Performance     Performance `json:"performance,omitempty"`
	YieldDifference *float64    `json:"yield_difference"`
}

// ScoreBreakdown exposes each normalized sub-score and the effective
// weights after redistribution. Excluded sub-scores are nil.
type ScoreBreakdown struct {
	MarketPosition      *float64           `json:"market_position"`
	InvestmentPotential *float64           `json:"investment_potential"`
	MarketMomentum      *float64           `json:"market_momentum"`
	Scarcity            *float64           `json:"scarcity"`
	AgentIntelligence   *float64           `json:"agent_intelligence"`
	EffectiveWeights    map[string]float64 `json:"effective_weights"`
}

// DataQuality reports which sections could not be computed.
type DataQuality struct {
	InsufficientDataComponents []string `json:"insufficient_data_components"`
	Notes                      []string `json:"notes,omitempty"`
}

// ComparableSummary is a compact view of a narrow-pool comparable.
type ComparableSummary struct {
	ID           string    `json:"id"`
	AskingPrice  float64   `json:"asking_price"`
	UsableArea   float64   `json:"usable_area"`
	PricePerArea float64   `json:"price_per_area"`
	ListedAt     time.Time `json:"listed_at"`
}

// DataSources counts the records the analysis drew on.
type DataSources struct {
	ComparableProperties int `json:"comparable_properties"`
	AgentProperties      int `json:"agent_properties"`
	MarketDataPoints     int `json:"market_data_points"`
}
