package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/property-market-engine/internal/metrics"
	"github.com/donaldgifford/property-market-engine/internal/store"
	storeMocks "github.com/donaldgifford/property-market-engine/internal/store/mocks"
	score "github.com/donaldgifford/property-market-engine/pkg/scorer"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(ms *storeMocks.MockStore, opts ...EngineOption) *Engine {
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return testNow }),
		WithSweepRate(0, 0),
	}
	return NewEngine(ms, append(base, opts...)...)
}

func property(id, location string, price, area float64, daysAgo int) domain.PropertyRecord {
	listed := testNow.Add(-time.Duration(daysAgo) * 24 * time.Hour)
	return domain.PropertyRecord{
		ID:           id,
		Location:     location,
		PropertyType: domain.PropertyApartment,
		AskingPrice:  price,
		InternalArea: area,
		Status:       domain.StatusCompleted,
		IsActive:     true,
		ListingDate:  &listed,
		CreatedAt:    listed,
	}
}

func testTarget() *domain.PropertyRecord {
	p := property("t-1", "Tirana, Blloku", 100000, 100, 0)
	p.Status = domain.StatusAnalyzing
	return &p
}

// tiranaPool returns ten comparables priced 1100..2000 per m², all above
// the test target's 1000 per m².
func tiranaPool() []domain.PropertyRecord {
	pool := make([]domain.PropertyRecord, 0, 10)
	for i := range 10 {
		pool = append(pool, property(
			fmt.Sprintf("c-%02d", i), "Tirana", float64(110000+i*10000), 100, 1+i*5,
		))
	}
	return pool
}

// expectLocationLookups sets up the supply and reference lookups for tirana.
func expectLocationLookups(m *storeMocks.MockStore) {
	m.EXPECT().
		FetchActiveCount(mock.Anything, mock.AnythingOfType("store.SupplyQuery")).
		Return(3, nil).
		Once()
	m.EXPECT().
		FetchSoldCount(mock.Anything, mock.AnythingOfType("store.SupplyQuery"), 6).
		Return(6, nil).
		Once()
	m.EXPECT().
		FetchRentBenchmark(mock.Anything, "tirana").
		Return(nil, store.ErrNotFound).
		Once()
	m.EXPECT().
		FetchAppreciationRate(mock.Anything, "tirana").
		Return(0.0, store.ErrNotFound).
		Once()
}

func TestAnalyze_FullPool(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(tiranaPool(), nil).
		Once()
	expectLocationLookups(ms)

	res, err := newTestEngine(ms).Analyze(context.Background(), testTarget())
	require.NoError(t, err)

	assert.Equal(t, "t-1", res.PropertyID)
	require.NotNil(t, res.InvestmentScore)
	assert.Equal(t, score.Recommend(*res.InvestmentScore, score.DefaultConfig().Thresholds), res.Recommendation)

	mp := res.MarketPosition
	assert.True(t, mp.Available)
	assert.Equal(t, domain.PositionBottomQuartile, mp.PositionCategory)
	assert.Equal(t, 10, mp.SampleSize)
	require.NotNil(t, mp.MarketPercentile)
	assert.InDelta(t, 0.0, *mp.MarketPercentile, 1e-9)

	assert.Nil(t, res.AgentIntelligence)
	assert.Contains(t, res.DataQuality.InsufficientDataComponents, domain.ComponentAgentIntelligence)
	assert.NotContains(t, res.DataQuality.InsufficientDataComponents, domain.ComponentMarketPosition)

	assert.True(t, res.Scarcity.Available)
	assert.True(t, res.InvestmentPotential.Available)
	assert.Equal(t, "estimate", res.InvestmentPotential.RentSource)
	assert.InDelta(t, 5.0, res.InvestmentPotential.AppreciationRate, 1e-9)

	assert.Len(t, res.Comparables, 5)
	assert.Equal(t, "c-00", res.Comparables[0].ID)
	assert.Equal(t, 10, res.DataSources.ComparableProperties)
	assert.Equal(t, 10, res.DataSources.MarketDataPoints)
	assert.Zero(t, res.DataSources.AgentProperties)

	assert.NotEmpty(t, res.MarketInsights)
	assert.LessOrEqual(t, len(res.MarketInsights), 5)
	assert.LessOrEqual(t, len(res.RiskFactors), 4)
	assert.LessOrEqual(t, len(res.ActionItems), 5)
}

func TestAnalyze_EmptyPool(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(nil, nil).
		Once()
	expectLocationLookups(ms)

	res, err := newTestEngine(ms).Analyze(context.Background(), testTarget())
	require.NoError(t, err)

	assert.False(t, res.MarketPosition.Available)
	assert.Equal(t, domain.PositionInsufficientData, res.MarketPosition.PositionCategory)
	assert.False(t, res.MarketMomentum.Available)
	assert.ElementsMatch(t, []string{
		domain.ComponentMarketPosition,
		domain.ComponentMarketMomentum,
		domain.ComponentAgentIntelligence,
	}, res.DataQuality.InsufficientDataComponents)
	assert.NotEmpty(t, res.DataQuality.Notes)

	// Scarcity and ROI still carry the score.
	require.NotNil(t, res.InvestmentScore)
	assert.Empty(t, res.Comparables)
	assert.NotNil(t, res.Comparables)
}

func TestAnalyze_ZeroAreaTarget(t *testing.T) {
	t.Parallel()

	pool := append(tiranaPool(), property("c-zero", "Tirana", 95000, 0, 2))
	unbounded := mock.MatchedBy(func(q store.SupplyQuery) bool {
		return q.MinArea == 0 && q.MaxArea == 0
	})

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(pool, nil).
		Once()
	ms.EXPECT().FetchActiveCount(mock.Anything, unbounded).Return(3, nil).Once()
	ms.EXPECT().FetchSoldCount(mock.Anything, unbounded, 6).Return(6, nil).Once()
	ms.EXPECT().FetchRentBenchmark(mock.Anything, "tirana").Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().FetchAppreciationRate(mock.Anything, "tirana").Return(0.0, store.ErrNotFound).Once()

	target := testTarget()
	target.InternalArea = 0
	target.TotalArea = 0
	require.Zero(t, target.PricePerArea())

	res, err := newTestEngine(ms).Analyze(context.Background(), target)
	require.NoError(t, err)

	mp := res.MarketPosition
	assert.False(t, mp.Available)
	assert.Equal(t, domain.PositionInsufficientData, mp.PositionCategory)
	assert.Equal(t, 10, mp.SampleSize, "zero-area comparables carry no price per area")
	require.NotNil(t, mp.MedianPricePerArea)
	assert.Nil(t, mp.MedianMarketPrice)
	assert.Nil(t, mp.PotentialSavings)
	assert.Contains(t, res.DataQuality.Notes, "market_position: target has no price per area")
	assert.Contains(t, res.RiskFactors,
		"Asking price or floor area missing; position against 10 comparables could not be computed")

	assert.True(t, res.Scarcity.Available)

	ip := res.InvestmentPotential
	assert.True(t, ip.Available)
	assert.Equal(t, "estimate", ip.RentSource)
	require.NotNil(t, ip.EstimatedMonthlyRent)
	assert.InDelta(t, 650.0, *ip.EstimatedMonthlyRent, 1e-9)

	require.NotNil(t, res.InvestmentScore)
	assert.Contains(t, res.DataQuality.InsufficientDataComponents, domain.ComponentMarketPosition)
	assert.NotContains(t, res.DataQuality.InsufficientDataComponents, domain.ComponentInvestmentPotential)
	assert.Len(t, res.Comparables, 5)
	assert.Equal(t, 11, res.DataSources.ComparableProperties)
	assert.Equal(t, 10, res.DataSources.MarketDataPoints)
}

func TestAnalyze_CachesLocationLookups(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(tiranaPool(), nil).
		Twice()
	// Lookups are expected once: the second analysis is served from cache,
	// including the cached absence of rent and appreciation data.
	expectLocationLookups(ms)

	eng := newTestEngine(ms)
	first, err := eng.Analyze(context.Background(), testTarget())
	require.NoError(t, err)
	second, err := eng.Analyze(context.Background(), testTarget())
	require.NoError(t, err)

	assert.Equal(t, first, second, "analysis must be idempotent")
}

func TestAnalyze_ResultIndependentOfAnalysisOrder(t *testing.T) {
	t.Parallel()

	segment := make([]domain.PropertyRecord, 0, 6)
	for i := range 6 {
		segment = append(segment, property(fmt.Sprintf("p-%d", i), "Tirana", float64(100000+i*10000), 100, i+1))
	}

	newEngine := func() *Engine {
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
			Return(segment, nil).
			Maybe()
		ms.EXPECT().FetchActiveCount(mock.Anything, mock.Anything).Return(3, nil).Maybe()
		ms.EXPECT().FetchSoldCount(mock.Anything, mock.Anything, mock.Anything).Return(6, nil).Maybe()
		ms.EXPECT().FetchRentBenchmark(mock.Anything, "tirana").Return(nil, store.ErrNotFound).Maybe()
		ms.EXPECT().FetchAppreciationRate(mock.Anything, "tirana").Return(0.0, store.ErrNotFound).Maybe()
		return newTestEngine(ms)
	}

	cold, err := newEngine().Analyze(context.Background(), &segment[1])
	require.NoError(t, err)

	warmEngine := newEngine()
	_, err = warmEngine.Analyze(context.Background(), &segment[0])
	require.NoError(t, err)
	warm, err := warmEngine.Analyze(context.Background(), &segment[1])
	require.NoError(t, err)

	assert.Equal(t, 5, cold.MarketPosition.SampleSize)
	assert.Equal(t, 5, warm.MarketPosition.SampleSize)
	assert.True(t, warm.MarketPosition.Available)
	assert.Equal(t, cold, warm)
}

func TestAnalyze_AgentProfile(t *testing.T) {
	t.Parallel()

	durres := make([]domain.PropertyRecord, 0, 5)
	for i := range 5 {
		durres = append(durres, property(fmt.Sprintf("d-%d", i), "Durres", 100000, 100, i+1))
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(tiranaPool(), nil).
		Once()
	expectLocationLookups(ms)
	ms.EXPECT().
		FetchAgentListings(mock.Anything, domain.AgentIdentity{Name: "ana kola", Email: "ana@example.com"}).
		Return([]domain.PropertyRecord{
			property("a-1", "Durres", 120000, 100, 3),
			property("a-2", "Durres, Plazh", 110000, 100, 4),
		}, nil).
		Once()
	ms.EXPECT().
		FetchComparables(mock.Anything, "durres", domain.PropertyApartment, "").
		Return(durres, nil).
		Once()

	target := testTarget()
	target.AgentName = "  Ana Kola"
	target.AgentEmail = "ANA@example.com "

	res, err := newTestEngine(ms).Analyze(context.Background(), target)
	require.NoError(t, err)

	ai := res.AgentIntelligence
	require.NotNil(t, ai)
	assert.True(t, ai.Available)
	assert.Equal(t, 2, ai.PortfolioSize)
	assert.Equal(t, 2, ai.ComparedListingsCount)
	assert.False(t, ai.LowConfidence)
	require.NotNil(t, ai.AvgPriceVsMarket)
	assert.InDelta(t, 15.0, *ai.AvgPriceVsMarket, 1e-6)
	assert.Equal(t, domain.NegotiationHigh, ai.NegotiationPotential)
	assert.Equal(t, domain.PricingPremium, ai.PricingStyle)
	require.NotNil(t, ai.ConsistencyScore)
	assert.InDelta(t, 90.0, *ai.ConsistencyScore, 1e-6)
	require.NotNil(t, ai.AgentVelocity)
	assert.InDelta(t, 3.5, *ai.AgentVelocity, 1e-6)

	assert.Equal(t, 2, res.DataSources.AgentProperties)
	assert.NotContains(t, res.DataQuality.InsufficientDataComponents, domain.ComponentAgentIntelligence)
}

func TestAnalyze_FetchErrorsEscape(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")

	tests := []struct {
		name      string
		setupMock func(*storeMocks.MockStore)
	}{
		{
			name: "comparables fetch fails",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(nil, boom).
					Once()
			},
		},
		{
			name: "rent benchmark fetch fails",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(tiranaPool(), nil).
					Once()
				m.EXPECT().
					FetchActiveCount(mock.Anything, mock.Anything).
					Return(3, nil).
					Maybe()
				m.EXPECT().
					FetchSoldCount(mock.Anything, mock.Anything, mock.Anything).
					Return(6, nil).
					Maybe()
				m.EXPECT().
					FetchRentBenchmark(mock.Anything, "tirana").
					Return(nil, boom).
					Once()
			},
		},
		{
			name: "active supply fetch fails",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(tiranaPool(), nil).
					Once()
				m.EXPECT().
					FetchActiveCount(mock.Anything, mock.Anything).
					Return(0, boom).
					Once()
				m.EXPECT().
					FetchRentBenchmark(mock.Anything, mock.Anything).
					Return(nil, store.ErrNotFound).
					Maybe()
				m.EXPECT().
					FetchAppreciationRate(mock.Anything, mock.Anything).
					Return(0.0, store.ErrNotFound).
					Maybe()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			before := ptestutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues(outcomeError))

			res, err := newTestEngine(ms).Analyze(context.Background(), testTarget())
			require.ErrorIs(t, err, boom)
			assert.Nil(t, res)
			assert.GreaterOrEqual(t,
				ptestutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues(outcomeError)), before+1)
		})
	}
}

func TestAnalyzeByID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(*storeMocks.MockStore)
		wantErr   error
	}{
		{
			name: "analyzes and persists",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProperty(mock.Anything, "t-1").Return(testTarget(), nil).Once()
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(tiranaPool(), nil).
					Once()
				expectLocationLookups(m)
				m.EXPECT().
					SaveAnalysis(mock.Anything, "t-1", mock.AnythingOfType("*domain.AnalysisResult")).
					Return(nil).
					Once()
			},
		},
		{
			name: "unknown property",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProperty(mock.Anything, "t-1").Return(nil, store.ErrNotFound).Once()
			},
			wantErr: ErrPropertyNotFound,
		},
		{
			name: "save failure is returned",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetProperty(mock.Anything, "t-1").Return(testTarget(), nil).Once()
				m.EXPECT().
					FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
					Return(tiranaPool(), nil).
					Once()
				expectLocationLookups(m)
				m.EXPECT().
					SaveAnalysis(mock.Anything, "t-1", mock.Anything).
					Return(errSaveFailed).
					Once()
			},
			wantErr: errSaveFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			res, err := newTestEngine(ms).AnalyzeByID(context.Background(), "t-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t-1", res.PropertyID)
		})
	}
}

var errSaveFailed = errors.New("save failed")

func TestMarketSnapshot(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		FetchComparables(mock.Anything, "tirana", domain.PropertyApartment, "").
		Return(tiranaPool(), nil).
		Once()

	eng := newTestEngine(ms)

	view, err := eng.MarketSnapshot(context.Background(), " Tirana , Center", domain.PropertyApartment)
	require.NoError(t, err)
	assert.Equal(t, "tirana", view.Snapshot.LocationKey)
	assert.Equal(t, 10, view.Snapshot.SampleSize)
	require.NotNil(t, view.Snapshot.MedianPricePerArea)
	assert.InDelta(t, 1550.0, *view.Snapshot.MedianPricePerArea, 1e-9)

	again, err := eng.MarketSnapshot(context.Background(), "TIRANA", domain.PropertyApartment)
	require.NoError(t, err)
	assert.Equal(t, view, again)

	_, err = eng.MarketSnapshot(context.Background(), "  ", domain.PropertyApartment)
	require.ErrorIs(t, err, ErrInvalidLocation)
}

func TestAgentKey(t *testing.T) {
	t.Parallel()

	a := agentKey(domain.AgentIdentity{Name: "ana", Email: "ana@example.com"})
	b := agentKey(domain.AgentIdentity{Name: "ana", Email: "other@example.com"})

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, agentKey(domain.AgentIdentity{Name: "ana", Email: "ana@example.com"}))
}
