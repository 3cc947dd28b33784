// Package cmd implements the CLI commands for market-engine.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/property-market-engine/internal/cache"
	"github.com/donaldgifford/property-market-engine/internal/config"
	"github.com/donaldgifford/property-market-engine/internal/engine"
	"github.com/donaldgifford/property-market-engine/internal/store"
	"github.com/donaldgifford/property-market-engine/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "market-engine",
	Short: "Analyze real estate listings against their local market",
	Long: "market-engine scores properties against comparable listings in their market. " +
		"It computes market position, agent negotiation patterns, neighborhood momentum, " +
		"supply scarcity and rental returns, and serves the results over an HTTP API.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and installs the configured logger as the
// slog default.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}

// services is the set of long-lived dependencies shared by commands that
// analyze properties.
type services struct {
	store  *store.PostgresStore
	cache  *cache.Layer
	engine *engine.Engine
}

func openServices(ctx context.Context, cfg *config.Config, log *slog.Logger) (*services, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	backend, err := cache.Open(ctx, cfg.Cache.BackendConfig())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("opening %s cache: %w", cfg.Cache.Backend, err)
	}
	layer := cache.New(backend, cache.WithLogger(log.With("component", "cache")))

	eng := engine.NewEngine(st,
		engine.WithLogger(log.With("component", "engine")),
		engine.WithCache(layer),
		engine.WithPolicy(cfg.Analysis.Policy()),
		engine.WithScoreConfig(cfg.Analysis.ScoreConfig()),
		engine.WithTTLs(cfg.Analysis.TTLs()),
		engine.WithSweepBatchSize(cfg.Schedule.SweepBatchSize),
		engine.WithSweepRate(cfg.Schedule.SweepRate, cfg.Schedule.SweepBurst),
	)

	log.Info("services ready",
		"database", cfg.Database.Host,
		"cache", cfg.Cache.Backend,
	)
	return &services{store: st, cache: layer, engine: eng}, nil
}

func (s *services) Close(log *slog.Logger) {
	if err := s.cache.Close(); err != nil {
		log.Warn("closing cache", "error", err)
	}
	s.store.Close()
}
