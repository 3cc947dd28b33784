// Package engine orchestrates property analyses: it fetches comparable pools
// from the store, runs the market analyzers in parallel through the cache,
// aggregates the score and persists the result.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/property-market-engine/internal/cache"
	"github.com/donaldgifford/property-market-engine/internal/store"
	"github.com/donaldgifford/property-market-engine/pkg/market"
	score "github.com/donaldgifford/property-market-engine/pkg/scorer"
)

const (
	instrumentationName = "github.com/donaldgifford/property-market-engine/internal/engine"

	defaultSweepBatchSize = 50
	defaultSweepRate      = 5
)

// ErrPropertyNotFound is returned when the property to analyze does not exist.
var ErrPropertyNotFound = errors.New("property not found")

// TTLs holds the cache lifetime of each analyzer input.
type TTLs struct {
	Position     time.Duration
	Agent        time.Duration
	Momentum     time.Duration
	Scarcity     time.Duration
	Rent         time.Duration
	Appreciation time.Duration
}

// DefaultTTLs returns the standard cache lifetimes.
func DefaultTTLs() TTLs {
	return TTLs{
		Position:     time.Hour,
		Agent:        2 * time.Hour,
		Momentum:     6 * time.Hour,
		Scarcity:     time.Hour,
		Rent:         6 * time.Hour,
		Appreciation: 24 * time.Hour,
	}
}

// Engine runs property analyses. It holds no per-analysis state and is safe
// for concurrent use.
type Engine struct {
	store   store.Store
	cache   *cache.Layer
	policy  market.Policy
	scoring score.Config
	ttl     TTLs
	log     *slog.Logger
	now     func() time.Time

	sweepBatchSize int
	sweepLimiter   *rate.Limiter

	tracer   trace.Tracer
	analyses metric.Int64Counter
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithCache sets the cache layer. Without it an in-process memory cache is used.
func WithCache(c *cache.Layer) EngineOption {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithPolicy overrides the analyzer thresholds.
func WithPolicy(p market.Policy) EngineOption {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithScoreConfig overrides the aggregator weights and tables.
func WithScoreConfig(c score.Config) EngineOption {
	return func(e *Engine) {
		e.scoring = c
	}
}

// WithTTLs overrides the cache lifetimes.
func WithTTLs(t TTLs) EngineOption {
	return func(e *Engine) {
		e.ttl = t
	}
}

// WithClock sets the time source used for velocity windows.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithSweepBatchSize sets how many pending properties one sweep picks up.
func WithSweepBatchSize(n int) EngineOption {
	return func(e *Engine) {
		e.sweepBatchSize = n
	}
}

// WithSweepRate paces sweep analyses to perSecond with the given burst.
// A non-positive rate disables pacing.
func WithSweepRate(perSecond float64, burst int) EngineOption {
	return func(e *Engine) {
		if perSecond <= 0 {
			e.sweepLimiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		e.sweepLimiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:          s,
		policy:         market.DefaultPolicy(),
		scoring:        score.DefaultConfig(),
		ttl:            DefaultTTLs(),
		log:            slog.Default(),
		now:            time.Now,
		sweepBatchSize: defaultSweepBatchSize,
		sweepLimiter:   rate.NewLimiter(defaultSweepRate, 1),
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.cache == nil {
		eng.cache = cache.New(cache.NewMemoryBackend(), cache.WithLogger(eng.log))
	}

	eng.tracer = otel.Tracer(instrumentationName)
	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"pme.analyses",
		metric.WithDescription("Number of property analyses by outcome"),
	)
	if err != nil {
		eng.log.Warn("creating analyses counter", "error", err)
	} else {
		eng.analyses = counter
	}

	return eng
}
