package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/property-market-engine/internal/cache"
	"github.com/donaldgifford/property-market-engine/internal/metrics"
	"github.com/donaldgifford/property-market-engine/internal/store"
	"github.com/donaldgifford/property-market-engine/pkg/market"
	score "github.com/donaldgifford/property-market-engine/pkg/scorer"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Cache namespaces.
const (
	nsPosition     = "position"
	nsAgent        = "agent"
	nsMomentum     = "momentum"
	nsScarcity     = "scarcity"
	nsRent         = "rent"
	nsAppreciation = "appreciation"
)

// Analysis outcomes recorded in metrics.
const (
	outcomeScored       = "scored"
	outcomeInsufficient = "insufficient_data"
	outcomeError        = "error"
)

// rentEntry caches a rent benchmark lookup, including its absence.
type rentEntry struct {
	Found     bool                  `json:"found"`
	Benchmark *domain.RentBenchmark `json:"benchmark,omitempty"`
}

// rateEntry caches an appreciation rate lookup, including its absence.
type rateEntry struct {
	Found bool    `json:"found"`
	Rate  float64 `json:"rate"`
}

// sections collects the analyzer outputs for one target.
type sections struct {
	snapshot   market.Snapshot
	position   domain.MarketPosition
	agent      *domain.AgentIntelligence
	momentum   domain.MarketMomentum
	scarcity   domain.Scarcity
	investment domain.InvestmentPotential
}

// AnalyzeByID loads a property, analyzes it and persists the result.
func (eng *Engine) AnalyzeByID(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	p, err := eng.store.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
		}
		return nil, fmt.Errorf("getting property %s: %w", id, err)
	}

	res, err := eng.Analyze(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := eng.store.SaveAnalysis(ctx, p.ID, res); err != nil {
		return nil, fmt.Errorf("saving analysis for %s: %w", p.ID, err)
	}
	return res, nil
}

// Analyze computes the full analysis of target. Only store fetch failures
// are returned as errors; missing data shows up as unavailable sections and
// in the data quality block.
func (eng *Engine) Analyze(ctx context.Context, target *domain.PropertyRecord) (*domain.AnalysisResult, error) {
	start := time.Now()
	loc := target.LocationKey()

	ctx, span := eng.tracer.Start(ctx, "engine.Analyze", trace.WithAttributes(
		attribute.String("property.id", target.ID),
		attribute.String("property.location", loc),
		attribute.String("property.type", string(target.PropertyType)),
	))
	defer span.End()

	res, err := eng.analyze(ctx, target, loc)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		eng.record(ctx, outcomeError)
		eng.log.ErrorContext(ctx, "analysis failed",
			"property_id", target.ID,
			"location", loc,
			"error", err,
		)
		return nil, err
	}

	outcome := outcomeScored
	if res.Insufficient() {
		outcome = outcomeInsufficient
	} else {
		metrics.ScoringDistribution.Observe(float64(*res.InvestmentScore))
	}
	for _, c := range res.DataQuality.InsufficientDataComponents {
		metrics.ComponentUnavailableTotal.WithLabelValues(c).Inc()
	}
	eng.record(ctx, outcome)
	span.SetAttributes(attribute.String("analysis.recommendation", string(res.Recommendation)))

	eng.log.InfoContext(ctx, "analysis complete",
		"property_id", target.ID,
		"location", loc,
		"recommendation", res.Recommendation,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (eng *Engine) analyze(
	ctx context.Context,
	target *domain.PropertyRecord,
	loc string,
) (*domain.AnalysisResult, error) {
	segment, err := eng.store.FetchComparables(ctx, loc, target.PropertyType, "")
	if err != nil {
		return nil, fmt.Errorf("fetching comparables for %s: %w", target.ID, err)
	}
	pools := market.SelectComparables(target, segment, eng.policy)

	var (
		s              sections
		agentPortfolio int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// The cached snapshot covers the whole segment, target included;
		// the analyzers leave the target out by ID.
		snap, err := eng.loadSnapshot(gctx, loc, target.PropertyType, func(context.Context) ([]domain.PropertyRecord, error) {
			return eng.segmentPool(loc, target.PropertyType, segment), nil
		})
		if err != nil {
			return err
		}
		s.snapshot = snap
		s.position = market.Position(target, &snap, eng.policy)

		s.momentum, err = eng.loadMomentum(gctx, loc, target.PropertyType, snap.Samples)
		if err != nil {
			return err
		}

		// Scarcity needs the snapshot for feature shares.
		s.scarcity, err = eng.scarcity(gctx, target, loc, &snap)
		return err
	})

	g.Go(func() error {
		var err error
		s.agent, agentPortfolio, err = eng.agentIntelligence(gctx, target.Agent())
		return err
	})

	g.Go(func() error {
		var err error
		s.investment, err = eng.investment(gctx, target, loc)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return eng.assemble(target, pools, s, agentPortfolio), nil
}

// assemble aggregates the sections into the final result.
func (eng *Engine) assemble(
	target *domain.PropertyRecord,
	pools market.Pools,
	s sections,
	agentPortfolio int,
) *domain.AnalysisResult {
	agg := score.Score(score.Inputs{
		Position:   s.position,
		Investment: s.investment,
		Momentum:   s.momentum,
		Scarcity:   s.scarcity,
		Agent:      s.agent,
	}, eng.scoring)

	res := &domain.AnalysisResult{
		PropertyID:          target.ID,
		InvestmentScore:     agg.Score,
		Recommendation:      agg.Recommendation,
		MarketPosition:      s.position,
		AgentIntelligence:   s.agent,
		MarketMomentum:      s.momentum,
		Scarcity:            s.scarcity,
		InvestmentPotential: s.investment,
		ScoreBreakdown:      agg.Breakdown,
		DataQuality: domain.DataQuality{
			InsufficientDataComponents: agg.Missing,
			Notes:                      qualityNotes(s, eng.policy),
		},
		Comparables: market.Summaries(pools.Narrow),
		DataSources: domain.DataSources{
			ComparableProperties: len(pools.Broad),
			AgentProperties:      agentPortfolio,
			MarketDataPoints:     s.snapshot.SampleSize,
		},
	}

	n := market.BuildNarrative(res, eng.policy)
	res.MarketInsights = n.Insights
	res.RiskFactors = n.Risks
	res.ActionItems = n.Actions
	return res
}

// loadSnapshot reads the market snapshot for a segment, building it from
// the pool returned by fetch on a miss.
func (eng *Engine) loadSnapshot(
	ctx context.Context,
	loc string,
	pt domain.PropertyType,
	fetch func(context.Context) ([]domain.PropertyRecord, error),
) (market.Snapshot, error) {
	key := cache.Key(nsPosition, loc, string(pt))
	return cache.Load(ctx, eng.cache, nsPosition, key, eng.ttl.Position,
		func(ctx context.Context) (market.Snapshot, error) {
			pool, err := fetch(ctx)
			if err != nil {
				return market.Snapshot{}, err
			}
			return market.BuildSnapshot(loc, pt, pool, eng.now(), eng.policy), nil
		})
}

// segmentSnapshot loads the snapshot of a segment, fetching its pool from
// the store on a miss.
func (eng *Engine) segmentSnapshot(ctx context.Context, loc string, pt domain.PropertyType) (market.Snapshot, error) {
	return eng.loadSnapshot(ctx, loc, pt, func(ctx context.Context) ([]domain.PropertyRecord, error) {
		candidates, err := eng.store.FetchComparables(ctx, loc, pt, "")
		if err != nil {
			return nil, fmt.Errorf("fetching comparables for %s/%s: %w", loc, pt, err)
		}
		return eng.segmentPool(loc, pt, candidates), nil
	})
}

// segmentPool filters store candidates to every completed, priced sale of
// the segment, leaving no property out.
func (eng *Engine) segmentPool(loc string, pt domain.PropertyType, candidates []domain.PropertyRecord) []domain.PropertyRecord {
	all := &domain.PropertyRecord{Location: loc, PropertyType: pt}
	return market.SelectComparables(all, candidates, eng.policy).Broad
}

func (eng *Engine) loadMomentum(
	ctx context.Context,
	loc string,
	pt domain.PropertyType,
	samples []market.PriceSample,
) (domain.MarketMomentum, error) {
	key := cache.Key(nsMomentum, loc, string(pt))
	return cache.Load(ctx, eng.cache, nsMomentum, key, eng.ttl.Momentum,
		func(context.Context) (domain.MarketMomentum, error) {
			return market.TrackVelocity(samples, eng.now(), eng.policy), nil
		})
}

// agentIntelligence profiles the listing agent. It returns nil when the
// listing carries no agent identity.
func (eng *Engine) agentIntelligence(
	ctx context.Context,
	agent domain.AgentIdentity,
) (*domain.AgentIntelligence, int, error) {
	if agent.IsZero() {
		return nil, 0, nil
	}

	key := cache.Key(nsAgent, agentKey(agent))
	ai, err := cache.Load(ctx, eng.cache, nsAgent, key, eng.ttl.Agent,
		func(ctx context.Context) (domain.AgentIntelligence, error) {
			listings, err := eng.store.FetchAgentListings(ctx, agent)
			if err != nil {
				return domain.AgentIntelligence{}, fmt.Errorf("fetching agent listings: %w", err)
			}

			obs := make([]market.AgentObservation, 0, len(listings))
			for i := range listings {
				l := &listings[i]
				snap, err := eng.segmentSnapshot(ctx, l.LocationKey(), l.PropertyType)
				if err != nil {
					return domain.AgentIntelligence{}, err
				}
				median, n := snap.MedianExcluding(l.ID)
				o := market.AgentObservation{
					PricePerArea:  l.PricePerArea(),
					MarketMedian:  median,
					MarketSamples: n,
				}
				if days, ok := l.DaysOnMarket(eng.now()); ok {
					o.DaysOnMarket = &days
				}
				obs = append(obs, o)
			}
			return market.AnalyzeAgent(len(listings), obs, eng.policy), nil
		})
	if err != nil {
		return nil, 0, err
	}
	return &ai, ai.PortfolioSize, nil
}

func (eng *Engine) scarcity(
	ctx context.Context,
	target *domain.PropertyRecord,
	loc string,
	snap *market.Snapshot,
) (domain.Scarcity, error) {
	band := market.SizeBandFor(target.UsableArea(), eng.policy)
	q := store.SupplyQuery{
		LocationKey:  loc,
		PropertyType: target.PropertyType,
		MinArea:      band.Min,
		MaxArea:      band.Max,
	}

	key := cache.Key(nsScarcity, loc, string(target.PropertyType), band.String())
	counts, err := cache.Load(ctx, eng.cache, nsScarcity, key, eng.ttl.Scarcity,
		func(ctx context.Context) (market.SupplyCounts, error) {
			active, err := eng.store.FetchActiveCount(ctx, q)
			if err != nil {
				return market.SupplyCounts{}, fmt.Errorf("fetching active supply: %w", err)
			}
			sold, err := eng.store.FetchSoldCount(ctx, q, eng.policy.Scarcity.SoldLookbackMonths)
			if err != nil {
				return market.SupplyCounts{}, fmt.Errorf("fetching sold supply: %w", err)
			}
			return market.SupplyCounts{Active: active, Sold: sold}, nil
		})
	if err != nil {
		return domain.Scarcity{}, err
	}
	return market.AnalyzeScarcity(target, counts, snap, eng.policy), nil
}

func (eng *Engine) investment(
	ctx context.Context,
	target *domain.PropertyRecord,
	loc string,
) (domain.InvestmentPotential, error) {
	rent, err := cache.Load(ctx, eng.cache, nsRent, cache.Key(nsRent, loc), eng.ttl.Rent,
		func(ctx context.Context) (rentEntry, error) {
			b, err := eng.store.FetchRentBenchmark(ctx, loc)
			if errors.Is(err, store.ErrNotFound) {
				return rentEntry{}, nil
			}
			if err != nil {
				return rentEntry{}, fmt.Errorf("fetching rent benchmark: %w", err)
			}
			return rentEntry{Found: true, Benchmark: b}, nil
		})
	if err != nil {
		return domain.InvestmentPotential{}, err
	}

	appreciation, err := cache.Load(ctx, eng.cache, nsAppreciation, cache.Key(nsAppreciation, loc), eng.ttl.Appreciation,
		func(ctx context.Context) (rateEntry, error) {
			r, err := eng.store.FetchAppreciationRate(ctx, loc)
			if errors.Is(err, store.ErrNotFound) {
				return rateEntry{}, nil
			}
			if err != nil {
				return rateEntry{}, fmt.Errorf("fetching appreciation rate: %w", err)
			}
			return rateEntry{Found: true, Rate: r}, nil
		})
	if err != nil {
		return domain.InvestmentPotential{}, err
	}

	var in market.ROIInputs
	if rent.Found {
		in.Benchmark = rent.Benchmark
	}
	if appreciation.Found {
		in.AppreciationRate = &appreciation.Rate
	}
	return market.CalculateROI(target, in, eng.policy), nil
}

func (eng *Engine) record(ctx context.Context, outcome string) {
	metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
	if eng.analyses != nil {
		eng.analyses.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

// agentKey hashes the agent identity into a short stable cache key.
func agentKey(a domain.AgentIdentity) string {
	sum := sha256.Sum256([]byte(a.Name + "|" + a.Email))
	return hex.EncodeToString(sum[:])[:16]
}

// qualityNotes collects the analyzer notes worth surfacing to readers.
func qualityNotes(s sections, p market.Policy) []string {
	var notes []string
	switch {
	case s.position.Available:
	case s.position.SampleSize < p.MinSampleSize:
		notes = append(notes, fmt.Sprintf(
			"market_position: %d comparables, at least %d required", s.position.SampleSize, p.MinSampleSize))
	default:
		notes = append(notes, "market_position: target has no price per area")
	}
	if s.agent != nil && s.agent.Available && s.agent.LowConfidence {
		notes = append(notes, "agent_intelligence: low confidence, fewer than 2 priced listings compared")
	}
	notes = append(notes, s.momentum.Notes...)
	if s.investment.Available && s.investment.RentSource == market.RentSourceEstimate {
		notes = append(notes, "investment_potential: no rent benchmark, rent estimated from asking price")
	}
	return notes
}
