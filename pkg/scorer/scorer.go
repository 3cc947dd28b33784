// Package score combines the market analyzers' signals into a single
// investment score and recommendation.
package score

import (
	"math"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Weights defines the relative importance of each scoring factor.
type Weights struct {
	MarketPosition      float64 `yaml:"market_position"`
	InvestmentPotential float64 `yaml:"investment_potential"`
	MarketMomentum      float64 `yaml:"market_momentum"`
	Scarcity            float64 `yaml:"scarcity"`
	AgentIntelligence   float64 `yaml:"agent_intelligence"`
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		MarketPosition:      0.30,
		InvestmentPotential: 0.25,
		MarketMomentum:      0.20,
		Scarcity:            0.15,
		AgentIntelligence:   0.10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.MarketPosition + w.InvestmentPotential + w.MarketMomentum + w.Scarcity + w.AgentIntelligence
}

// Thresholds are the minimum scores for each recommendation bucket.
type Thresholds struct {
	StrongBuy int `yaml:"strong_buy"`
	Buy       int `yaml:"buy"`
	Hold      int `yaml:"hold"`
}

// PositionScores maps position categories to sub-scores.
type PositionScores struct {
	BottomQuartile float64 `yaml:"bottom_quartile"`
	LowMid         float64 `yaml:"low_mid"`
	HighMid        float64 `yaml:"high_mid"`
	TopQuartile    float64 `yaml:"top_quartile"`
}

// TemperatureScores maps market temperatures to sub-scores.
type TemperatureScores struct {
	Hot      float64 `yaml:"hot"`
	Warm     float64 `yaml:"warm"`
	Moderate float64 `yaml:"moderate"`
	Cool     float64 `yaml:"cool"`
}

// NegotiationScores maps agent negotiation potential to sub-scores.
type NegotiationScores struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
	Low    float64 `yaml:"low"`
}

// Config is the complete, immutable scoring configuration.
type Config struct {
	Weights            Weights
	Thresholds         Thresholds
	Position           PositionScores
	Temperature        TemperatureScores
	Negotiation        NegotiationScores
	TargetYieldCeiling float64
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		Weights:     DefaultWeights(),
		Thresholds:  Thresholds{StrongBuy: 80, Buy: 65, Hold: 45},
		Position:    PositionScores{BottomQuartile: 90, LowMid: 70, HighMid: 45, TopQuartile: 20},
		Temperature: TemperatureScores{Hot: 85, Warm: 70, Moderate: 50, Cool: 30},
		Negotiation: NegotiationScores{High: 80, Medium: 60, Low: 40},
		// gross yield that earns a full sub-score
		TargetYieldCeiling: 8.0,
	}
}

// Inputs holds the analyzer sections to combine.
type Inputs struct {
	Position   domain.MarketPosition
	Investment domain.InvestmentPotential
	Momentum   domain.MarketMomentum
	Scarcity   domain.Scarcity
	Agent      *domain.AgentIntelligence
}

// Result is the aggregated score. Score is nil when no sub-score was
// available, in which case Recommendation is insufficient_data.
type Result struct {
	Score          *int
	Recommendation domain.Recommendation
	Breakdown      domain.ScoreBreakdown
	Missing        []string
}

type factor struct {
	name   string
	weight float64
	score  *float64
}

// Score normalizes each section to a 0-100 sub-score and combines the
// available ones. Weights of unavailable sections are redistributed
// proportionally over the rest.
func Score(in Inputs, c Config) Result {
	b := domain.ScoreBreakdown{
		MarketPosition:      positionScore(in.Position, c.Position),
		InvestmentPotential: yieldScore(in.Investment, c.TargetYieldCeiling),
		MarketMomentum:      momentumScore(in.Momentum, c.Temperature),
		Scarcity:            scarcityScore(in.Scarcity),
		AgentIntelligence:   agentScore(in.Agent, c.Negotiation),
		EffectiveWeights:    map[string]float64{},
	}

	factors := []factor{
		{domain.ComponentMarketPosition, c.Weights.MarketPosition, b.MarketPosition},
		{domain.ComponentInvestmentPotential, c.Weights.InvestmentPotential, b.InvestmentPotential},
		{domain.ComponentMarketMomentum, c.Weights.MarketMomentum, b.MarketMomentum},
		{domain.ComponentScarcity, c.Weights.Scarcity, b.Scarcity},
		{domain.ComponentAgentIntelligence, c.Weights.AgentIntelligence, b.AgentIntelligence},
	}

	res := Result{Missing: []string{}}
	var weightSum, total float64
	for _, f := range factors {
		if f.score == nil {
			res.Missing = append(res.Missing, f.name)
			continue
		}
		weightSum += f.weight
		total += f.weight * *f.score
	}

	if weightSum <= 0 {
		res.Recommendation = domain.RecommendInsufficientData
		res.Breakdown = b
		return res
	}

	for _, f := range factors {
		if f.score != nil {
			b.EffectiveWeights[f.name] = math.Round(f.weight/weightSum*10000) / 10000
		}
	}

	s := int(math.Round(total / weightSum))
	if s > 100 {
		s = 100
	}
	if s < 0 {
		s = 0
	}

	res.Score = &s
	res.Recommendation = Recommend(s, c.Thresholds)
	res.Breakdown = b
	return res
}

// Recommend maps a score to its recommendation bucket.
func Recommend(s int, t Thresholds) domain.Recommendation {
	switch {
	case s >= t.StrongBuy:
		return domain.RecommendStrongBuy
	case s >= t.Buy:
		return domain.RecommendBuy
	case s >= t.Hold:
		return domain.RecommendHold
	default:
		return domain.RecommendAvoid
	}
}

func positionScore(mp domain.MarketPosition, ps PositionScores) *float64 {
	if !mp.Available {
		return nil
	}
	switch mp.PositionCategory {
	case domain.PositionBottomQuartile:
		return ptr(ps.BottomQuartile)
	case domain.PositionLowMid:
		return ptr(ps.LowMid)
	case domain.PositionHighMid:
		return ptr(ps.HighMid)
	case domain.PositionTopQuartile:
		return ptr(ps.TopQuartile)
	default:
		return nil
	}
}

// yieldScore scales gross yield linearly against the ceiling.
func yieldScore(ip domain.InvestmentPotential, ceiling float64) *float64 {
	if !ip.Available || ip.GrossAnnualYield == nil || ceiling <= 0 {
		return nil
	}
	s := lerp(*ip.GrossAnnualYield, 0, ceiling, 0, 100)
	return ptr(math.Max(0, math.Min(100, s)))
}

func momentumScore(mm domain.MarketMomentum, ts TemperatureScores) *float64 {
	if !mm.Available {
		return nil
	}
	switch mm.MarketTemperature {
	case domain.TemperatureHot:
		return ptr(ts.Hot)
	case domain.TemperatureWarm:
		return ptr(ts.Warm)
	case domain.TemperatureModerate:
		return ptr(ts.Moderate)
	case domain.TemperatureCool:
		return ptr(ts.Cool)
	default:
		return nil
	}
}

func scarcityScore(sc domain.Scarcity) *float64 {
	if !sc.Available {
		return nil
	}
	return ptr(float64(sc.ScarcityScore))
}

func agentScore(ai *domain.AgentIntelligence, ns NegotiationScores) *float64 {
	if ai == nil || !ai.Available {
		return nil
	}
	switch ai.NegotiationPotential {
	case domain.NegotiationHigh:
		return ptr(ns.High)
	case domain.NegotiationMedium:
		return ptr(ns.Medium)
	case domain.NegotiationLow:
		return ptr(ns.Low)
	default:
		return nil
	}
}

// lerp linearly interpolates a value between two score boundaries.
func lerp(val, minVal, maxVal, minScore, maxScore float64) float64 {
	if maxVal == minVal {
		return minScore
	}
	t := (val - minVal) / (maxVal - minVal)
	return minScore + t*(maxScore-minScore)
}

func ptr(v float64) *float64 {
	return &v
}
