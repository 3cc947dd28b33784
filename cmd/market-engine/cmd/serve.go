package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/property-market-engine/api/openapi"
	"github.com/donaldgifford/property-market-engine/internal/api/handlers"
	"github.com/donaldgifford/property-market-engine/internal/api/middleware"
	"github.com/donaldgifford/property-market-engine/internal/config"
	"github.com/donaldgifford/property-market-engine/internal/engine"
	"github.com/donaldgifford/property-market-engine/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and pending-analysis scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

// engineAPI is everything the HTTP layer needs from the engine.
type engineAPI interface {
	handlers.Analyzer
	handlers.MarketReader
	handlers.Sweeper
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry.ExporterConfig(Version))
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutting down telemetry", "error", err)
		}
	}()
	if tel.Enabled() {
		log.Info("telemetry export enabled", "endpoint", cfg.Telemetry.Endpoint)
	}

	svc, err := openServices(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer svc.Close(log)

	if migrateOnStart {
		if err := svc.store.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")
	}

	sched, err := engine.NewScheduler(
		svc.engine,
		cfg.Schedule.SweepInterval,
		cfg.Schedule.SweepTimeout,
		log.With("component", "scheduler"),
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	e := newServer(cfg.Server, log, svc.store, svc.engine)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server")
	case err := <-errCh:
		log.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduled sweep still running at shutdown")
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the echo instance with middleware, probes, metrics and
// the huma API mounted.
func newServer(
	cfg config.ServerConfig,
	log *slog.Logger,
	db handlers.Pinger,
	eng engineAPI,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(
		middleware.Tracing(otel.GetTracerProvider()),
		middleware.RequestLog(log.With("component", "http")),
		middleware.Recovery(log),
		middleware.Metrics(),
	)

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("Property Market Engine API", Version))
	handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysisHandler(eng))
	handlers.RegisterMarketRoutes(api, handlers.NewMarketsHandler(eng))
	handlers.RegisterTriggerRoutes(api, handlers.NewSweepHandler(eng))

	return e
}
