package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/property-market-engine/internal/engine"
)

// Sweeper analyzes properties still waiting for an analysis.
type Sweeper interface {
	RunPendingAnalyses(ctx context.Context) (engine.SweepSummary, error)
}

// SweepHandler handles manual sweep trigger requests.
type SweepHandler struct {
	sweeper Sweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(s Sweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

// SweepOutput is the response body for the sweep endpoint.
type SweepOutput struct {
	Body struct {
		engine.SweepSummary
		Status string `json:"status" example:"sweep completed" doc:"Sweep status"`
		Error  string `json:"error,omitempty" doc:"Joined per-property failures"`
	}
}

// Sweep runs one pending-analysis sweep. Per-property failures are reported
// in the body; the request only fails when nothing could be attempted.
func (h *SweepHandler) Sweep(ctx context.Context, _ *struct{}) (*SweepOutput, error) {
	summary, err := h.sweeper.RunPendingAnalyses(ctx)
	if err != nil && summary.Analyzed+summary.Failed == 0 {
		return nil, huma.Error500InternalServerError("sweep failed: " + err.Error())
	}

	resp := &SweepOutput{}
	resp.Body.SweepSummary = summary
	resp.Body.Status = "sweep completed"
	if err != nil {
		resp.Body.Status = "sweep completed with failures"
		resp.Body.Error = err.Error()
	}
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, sweepH *SweepHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sweep",
		Method:      http.MethodPost,
		Path:        "/api/v1/analyses/sweep",
		Summary:     "Analyze pending properties",
		Description: "Runs the pending-analysis sweep now instead of waiting for the scheduler.",
		Tags:        []string{"analysis"},
		Errors:      []int{http.StatusInternalServerError},
	}, sweepH.Sweep)
}
