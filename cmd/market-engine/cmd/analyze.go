package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

var (
	analyzeDryRun bool
	analyzeSweep  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [property-id...]",
	Short: "Analyze properties without going through the API",
	Long: "Analyzes the given properties directly against the database and prints the results as JSON. " +
		"With --pending, runs one pending-analysis sweep instead.",
	Example: `  market-engine analyze 3f2b1c9e-7d41-4a8e-9a57-0c1d2e3f4a5b
  market-engine analyze --dry-run 3f2b1c9e-7d41-4a8e-9a57-0c1d2e3f4a5b
  market-engine analyze --pending`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeDryRun, "dry-run", false, "compute the analysis without saving it")
	analyzeCmd.Flags().BoolVar(&analyzeSweep, "pending", false, "analyze all properties awaiting analysis")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if !analyzeSweep && len(args) == 0 {
		return errors.New("at least one property ID is required unless --pending is set")
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	svc, err := openServices(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer svc.Close(log)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if analyzeSweep {
		summary, err := svc.engine.RunPendingAnalyses(ctx)
		if encErr := enc.Encode(summary); encErr != nil {
			return encErr
		}
		return err
	}

	var errs []error
	for _, id := range args {
		res, err := analyzeOne(ctx, svc, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return errors.Join(errs...)
}

func analyzeOne(ctx context.Context, svc *services, id string) (*domain.AnalysisResult, error) {
	if !analyzeDryRun {
		return svc.engine.AnalyzeByID(ctx, id)
	}

	p, err := svc.store.GetProperty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting property %s: %w", id, err)
	}
	return svc.engine.Analyze(ctx, p)
}
