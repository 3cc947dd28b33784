package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donaldgifford/property-market-engine/internal/metrics"
)

// SweepSummary reports the outcome of one pending-analysis sweep.
type SweepSummary struct {
	Pending  int `json:"pending"`
	Analyzed int `json:"analyzed"`
	Failed   int `json:"failed"`
}

// RunPendingAnalyses analyzes properties still waiting for an analysis.
// A property whose analysis fails is marked failed and the sweep moves on;
// the individual failures are joined into the returned error.
func (eng *Engine) RunPendingAnalyses(ctx context.Context) (SweepSummary, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	pending, err := eng.store.ListPendingProperties(ctx, eng.sweepBatchSize)
	if err != nil {
		return SweepSummary{}, fmt.Errorf("listing pending properties: %w", err)
	}

	summary := SweepSummary{Pending: len(pending)}
	var errs []error

	for i := range pending {
		if err := eng.sweepLimiter.Wait(ctx); err != nil {
			errs = append(errs, err)
			break
		}

		p := &pending[i]
		res, err := eng.Analyze(ctx, p)
		if err == nil {
			err = eng.store.SaveAnalysis(ctx, p.ID, res)
		}
		if err != nil {
			summary.Failed++
			metrics.SweepPropertiesTotal.WithLabelValues("failed").Inc()
			errs = append(errs, fmt.Errorf("analyzing %s: %w", p.ID, err))

			if markErr := eng.store.MarkAnalysisFailed(ctx, p.ID); markErr != nil {
				errs = append(errs, fmt.Errorf("marking %s failed: %w", p.ID, markErr))
			}
			continue
		}

		summary.Analyzed++
		metrics.SweepPropertiesTotal.WithLabelValues("analyzed").Inc()
	}

	if err := errors.Join(errs...); err != nil {
		eng.log.Warn("sweep finished with failures",
			"pending", summary.Pending,
			"analyzed", summary.Analyzed,
			"failed", summary.Failed,
		)
		return summary, err
	}

	metrics.SweepLastSuccessTimestamp.SetToCurrentTime()
	eng.log.Info("sweep complete",
		"pending", summary.Pending,
		"analyzed", summary.Analyzed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}
