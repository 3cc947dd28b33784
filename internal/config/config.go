// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/property-market-engine/internal/cache"
	"github.com/donaldgifford/property-market-engine/internal/engine"
	"github.com/donaldgifford/property-market-engine/internal/telemetry"
	"github.com/donaldgifford/property-market-engine/pkg/market"
	score "github.com/donaldgifford/property-market-engine/pkg/scorer"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Cache     CacheConfig     `yaml:"cache"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s pool_max_conns=%d",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode, d.PoolSize,
	)
}

// CacheConfig selects the analysis cache backend.
type CacheConfig struct {
	Backend string       `yaml:"backend"` // memory, redis, badger
	Redis   RedisConfig  `yaml:"redis"`
	Badger  BadgerConfig `yaml:"badger"`
}

// RedisConfig defines the shared redis cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// BadgerConfig defines the embedded badger cache.
type BadgerConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
	Prefix   string `yaml:"prefix"`
}

// AnalysisConfig overrides analyzer thresholds, scoring and cache lifetimes.
// It starts out as the built-in defaults; keys present in YAML replace them.
type AnalysisConfig struct {
	MinSampleSize     int     `yaml:"min_sample_size"`
	NarrowPoolLimit   int     `yaml:"narrow_pool_limit"`
	SizeBandTolerance float64 `yaml:"size_band_tolerance"`

	Agent    market.AgentPolicy    `yaml:"agent"`
	Velocity market.VelocityPolicy `yaml:"velocity"`
	Scarcity market.ScarcityPolicy `yaml:"scarcity"`
	ROI      market.ROIPolicy      `yaml:"roi"`

	Weights    score.Weights    `yaml:"weights"`
	Thresholds score.Thresholds `yaml:"thresholds"`
	SubScores  SubScoreConfig   `yaml:"sub_scores"`
	TTL        CacheTTLConfig   `yaml:"ttl"`
}

// SubScoreConfig maps analyzer categories to 0-100 sub-scores.
type SubScoreConfig struct {
	Position           score.PositionScores    `yaml:"position"`
	Temperature        score.TemperatureScores `yaml:"temperature"`
	Negotiation        score.NegotiationScores `yaml:"negotiation"`
	TargetYieldCeiling float64                 `yaml:"target_yield_ceiling"`
}

// CacheTTLConfig sets how long each cached market signal stays fresh.
type CacheTTLConfig struct {
	Position     time.Duration `yaml:"position"`
	Agent        time.Duration `yaml:"agent"`
	Momentum     time.Duration `yaml:"momentum"`
	Scarcity     time.Duration `yaml:"scarcity"`
	Rent         time.Duration `yaml:"rent"`
	Appreciation time.Duration `yaml:"appreciation"`
}

// ScheduleConfig defines the pending sweep.
type ScheduleConfig struct {
	SweepInterval  time.Duration `yaml:"sweep_interval"`
	SweepTimeout   time.Duration `yaml:"sweep_timeout"`
	SweepBatchSize int           `yaml:"sweep_batch_size"`
	SweepRate      float64       `yaml:"sweep_rate"` // analyses per second
	SweepBurst     int           `yaml:"sweep_burst"`
}

// TelemetryConfig defines OTLP export.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"`
	Insecure       bool          `yaml:"insecure"`
	ServiceName    string        `yaml:"service_name"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	ExportInterval time.Duration `yaml:"export_interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config content, expanding environment variables before
// applying defaults and validating.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{Analysis: defaultAnalysisConfig()}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCacheDefaults(&cfg.Cache)
	applyScheduleDefaults(&cfg.Schedule)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.Backend == "" {
		c.Backend = cache.KindMemory
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "pme:"
	}
	if c.Badger.Prefix == "" {
		c.Badger.Prefix = "pme:"
	}
}

func defaultAnalysisConfig() AnalysisConfig {
	p := market.DefaultPolicy()
	sc := score.DefaultConfig()
	ttl := engine.DefaultTTLs()
	return AnalysisConfig{
		MinSampleSize:     p.MinSampleSize,
		NarrowPoolLimit:   p.NarrowPoolLimit,
		SizeBandTolerance: p.SizeBandTolerance,
		Agent:             p.Agent,
		Velocity:          p.Velocity,
		Scarcity:          p.Scarcity,
		ROI:               p.ROI,
		Weights:           sc.Weights,
		Thresholds:        sc.Thresholds,
		SubScores: SubScoreConfig{
			Position:           sc.Position,
			Temperature:        sc.Temperature,
			Negotiation:        sc.Negotiation,
			TargetYieldCeiling: sc.TargetYieldCeiling,
		},
		TTL: CacheTTLConfig{
			Position:     ttl.Position,
			Agent:        ttl.Agent,
			Momentum:     ttl.Momentum,
			Scarcity:     ttl.Scarcity,
			Rent:         ttl.Rent,
			Appreciation: ttl.Appreciation,
		},
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SweepInterval == 0 {
		s.SweepInterval = 15 * time.Minute
	}
	if s.SweepTimeout == 0 {
		s.SweepTimeout = 10 * time.Minute
	}
	if s.SweepBatchSize == 0 {
		s.SweepBatchSize = 50
	}
	if s.SweepRate == 0 {
		s.SweepRate = 5
	}
	if s.SweepBurst == 0 {
		s.SweepBurst = 1
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "property-market-engine"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
	if t.ExportInterval == 0 {
		t.ExportInterval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	switch cfg.Cache.Backend {
	case cache.KindMemory:
	case cache.KindRedis:
		if cfg.Cache.Redis.Addr == "" {
			errs = append(errs, errors.New("cache.redis.addr is required when backend is redis"))
		}
	case cache.KindBadger:
		if cfg.Cache.Badger.Path == "" && !cfg.Cache.Badger.InMemory {
			errs = append(
				errs,
				errors.New("cache.badger.path is required unless cache.badger.in_memory is set"),
			)
		}
	default:
		errs = append(errs, fmt.Errorf(
			"cache.backend must be one of: memory, redis, badger (got %q)",
			cfg.Cache.Backend,
		))
	}

	errs = append(errs, validateAnalysis(&cfg.Analysis)...)

	if cfg.Schedule.SweepBatchSize < 0 {
		errs = append(errs, errors.New("schedule.sweep_batch_size must not be negative"))
	}
	if cfg.Schedule.SweepInterval < time.Minute {
		errs = append(errs, errors.New("schedule.sweep_interval must be at least 1m"))
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf(
			"telemetry.sample_ratio must be between 0 and 1 (got %g)",
			cfg.Telemetry.SampleRatio,
		))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)",
			cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}

// checks collects validation failures.
type checks []error

func (c *checks) require(ok bool, format string, args ...any) {
	if !ok {
		*c = append(*c, fmt.Errorf(format, args...))
	}
}

func validateAnalysis(a *AnalysisConfig) []error {
	var c checks

	c.require(a.MinSampleSize >= 1, "analysis.min_sample_size must be at least 1")
	c.require(a.NarrowPoolLimit >= 1, "analysis.narrow_pool_limit must be at least 1")
	c.require(a.SizeBandTolerance >= 0 && a.SizeBandTolerance < 1,
		"analysis.size_band_tolerance must be in [0, 1) (got %g)", a.SizeBandTolerance)

	validateAgent(&c, &a.Agent)
	validateVelocity(&c, &a.Velocity)
	validateScarcity(&c, &a.Scarcity)
	validateROI(&c, &a.ROI)

	w := a.Weights
	c.require(w.MarketPosition >= 0 && w.InvestmentPotential >= 0 && w.MarketMomentum >= 0 &&
		w.Scarcity >= 0 && w.AgentIntelligence >= 0, "analysis.weights must not be negative")
	c.require(w.Sum() > 0, "analysis.weights must sum to more than 0")

	th := a.Thresholds
	c.require(th.StrongBuy <= 100 && th.Hold >= 0 && th.StrongBuy > th.Buy && th.Buy > th.Hold,
		"analysis.thresholds must satisfy 100 >= strong_buy > buy > hold >= 0 (got %d/%d/%d)",
		th.StrongBuy, th.Buy, th.Hold)

	ss := a.SubScores
	pos := ss.Position
	c.require(descending(pos.BottomQuartile, pos.LowMid, pos.HighMid, pos.TopQuartile),
		"analysis.sub_scores.position must satisfy 100 >= bottom_quartile >= low_mid >= high_mid >= top_quartile >= 0")
	temp := ss.Temperature
	c.require(descending(temp.Hot, temp.Warm, temp.Moderate, temp.Cool),
		"analysis.sub_scores.temperature must satisfy 100 >= hot >= warm >= moderate >= cool >= 0")
	neg := ss.Negotiation
	c.require(descending(neg.High, neg.Medium, neg.Low),
		"analysis.sub_scores.negotiation must satisfy 100 >= high >= medium >= low >= 0")
	c.require(ss.TargetYieldCeiling > 0, "analysis.sub_scores.target_yield_ceiling must be positive")

	ttl := a.TTL
	c.require(ttl.Position > 0 && ttl.Agent > 0 && ttl.Momentum > 0 && ttl.Scarcity > 0 &&
		ttl.Rent > 0 && ttl.Appreciation > 0, "analysis.ttl values must be positive")

	return c
}

func validateAgent(c *checks, ag *market.AgentPolicy) {
	c.require(ag.MinMarketSamples >= 1, "analysis.agent.min_market_samples must be at least 1")
	c.require(ag.HighNegotiationAbove > ag.MidNegotiationAbove,
		"analysis.agent must satisfy high_negotiation_above > mid_negotiation_above (got %g/%g)",
		ag.HighNegotiationAbove, ag.MidNegotiationAbove)
	c.require(ag.PremiumAbove > ag.DiscountBelow,
		"analysis.agent must satisfy premium_above > discount_below (got %g/%g)",
		ag.PremiumAbove, ag.DiscountBelow)
	c.require(ag.ConsistencyPenalty >= 0, "analysis.agent.consistency_penalty must not be negative")
	c.require(ag.SlowDaysAbove > ag.SteadyDaysAbove && ag.SteadyDaysAbove >= 0,
		"analysis.agent must satisfy slow_days_above > steady_days_above >= 0 (got %g/%g)",
		ag.SlowDaysAbove, ag.SteadyDaysAbove)
	c.require(ag.InconsistentBelow >= 0 && ag.InconsistentBelow <= 100,
		"analysis.agent.inconsistent_below must be in [0, 100] (got %g)", ag.InconsistentBelow)
	c.require(ag.Points.HighAt > ag.Points.MediumAt,
		"analysis.agent.negotiation_points must satisfy high_at > medium_at (got %g/%g)",
		ag.Points.HighAt, ag.Points.MediumAt)
}

func validateVelocity(c *checks, v *market.VelocityPolicy) {
	c.require(v.Window > 0, "analysis.velocity.window must be positive")
	c.require(v.MinWindowListings >= 1, "analysis.velocity.min_window_listings must be at least 1")
	c.require(v.HighVelocity > v.LowVelocity,
		"analysis.velocity must satisfy high_velocity > low_velocity (got %g/%g)",
		v.HighVelocity, v.LowVelocity)
	c.require(v.RisingMomentum > v.FallingMomentum,
		"analysis.velocity must satisfy rising_momentum > falling_momentum (got %g/%g)",
		v.RisingMomentum, v.FallingMomentum)
	c.require(v.ExpansionMomentum > v.ContractionMomentum,
		"analysis.velocity must satisfy expansion_momentum > contraction_momentum (got %g/%g)",
		v.ExpansionMomentum, v.ContractionMomentum)
}

func validateScarcity(c *checks, sc *market.ScarcityPolicy) {
	c.require(sc.RareAbove <= 100 && sc.RareAbove > sc.UncommonAbove && sc.UncommonAbove >= 0,
		"analysis.scarcity must satisfy 100 >= rare_above > uncommon_above >= 0 (got %d/%d)",
		sc.RareAbove, sc.UncommonAbove)
	c.require(sc.SupplyBase >= 0 && sc.ActivePenalty >= 0 && sc.DemandWeight >= 0 &&
		sc.DemandCap >= 0 && sc.FeatureBonus >= 0 && sc.FeatureCap >= 0,
		"analysis.scarcity weights and caps must not be negative")
	c.require(sc.RareFeatureShare >= 0 && sc.RareFeatureShare <= 1,
		"analysis.scarcity.rare_feature_share must be in [0, 1] (got %g)", sc.RareFeatureShare)
	c.require(sc.SizeBandStep > 0, "analysis.scarcity.size_band_step must be positive")
	c.require(sc.SoldLookbackMonths >= 1, "analysis.scarcity.sold_lookback_months must be at least 1")
}

func validateROI(c *checks, r *market.ROIPolicy) {
	c.require(r.ExpenseRatio >= 0 && r.ExpenseRatio < 1,
		"analysis.roi.expense_ratio must be in [0, 1) (got %g)", r.ExpenseRatio)
	c.require(r.FallbackMonthlyRentRatio > 0, "analysis.roi.fallback_monthly_rent_ratio must be positive")
	c.require(r.AtMarketBand >= 0, "analysis.roi.at_market_band must not be negative")
	c.require(r.TransactionCostRatio >= 0, "analysis.roi.transaction_cost_ratio must not be negative")
	c.require(r.RiskYieldWeight >= 0 && r.RiskAppreciationWeight >= 0,
		"analysis.roi risk weights must not be negative")
	c.require(r.ExcellentNetYield > r.GoodNetYield && r.GoodNetYield > r.ModerateNetYield,
		"analysis.roi must satisfy excellent_net_yield > good_net_yield > moderate_net_yield (got %g/%g/%g)",
		r.ExcellentNetYield, r.GoodNetYield, r.ModerateNetYield)
}

// descending reports whether scores lie in [0, 100] and never increase.
func descending(scores ...float64) bool {
	for i, v := range scores {
		if v < 0 || v > 100 || (i > 0 && v > scores[i-1]) {
			return false
		}
	}
	return true
}

// Policy returns the analyzer policy with this config's overrides applied.
func (a *AnalysisConfig) Policy() market.Policy {
	return market.Policy{
		MinSampleSize:     a.MinSampleSize,
		NarrowPoolLimit:   a.NarrowPoolLimit,
		SizeBandTolerance: a.SizeBandTolerance,
		Agent:             a.Agent,
		Velocity:          a.Velocity,
		Scarcity:          a.Scarcity,
		ROI:               a.ROI,
	}
}

// ScoreConfig returns the aggregator configuration.
func (a *AnalysisConfig) ScoreConfig() score.Config {
	return score.Config{
		Weights:            a.Weights,
		Thresholds:         a.Thresholds,
		Position:           a.SubScores.Position,
		Temperature:        a.SubScores.Temperature,
		Negotiation:        a.SubScores.Negotiation,
		TargetYieldCeiling: a.SubScores.TargetYieldCeiling,
	}
}

// TTLs returns the engine cache lifetimes.
func (a *AnalysisConfig) TTLs() engine.TTLs {
	return engine.TTLs{
		Position:     a.TTL.Position,
		Agent:        a.TTL.Agent,
		Momentum:     a.TTL.Momentum,
		Scarcity:     a.TTL.Scarcity,
		Rent:         a.TTL.Rent,
		Appreciation: a.TTL.Appreciation,
	}
}

// BackendConfig converts to the cache package's backend selection.
func (c *CacheConfig) BackendConfig() cache.Config {
	return cache.Config{
		Kind: c.Backend,
		Redis: cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
		Badger: cache.BadgerConfig{
			Path:     c.Badger.Path,
			InMemory: c.Badger.InMemory,
			Prefix:   c.Badger.Prefix,
		},
	}
}

// ExporterConfig converts to the telemetry package's exporter settings.
func (t *TelemetryConfig) ExporterConfig(version string) telemetry.Config {
	return telemetry.Config{
		Enabled:        t.Enabled,
		Endpoint:       t.Endpoint,
		Insecure:       t.Insecure,
		ServiceName:    t.ServiceName,
		ServiceVersion: version,
		SampleRatio:    t.SampleRatio,
		ExportInterval: t.ExportInterval,
	}
}
