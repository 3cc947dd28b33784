package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/property-market-engine/internal/engine"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// Analyzer runs and persists the analysis of a stored property.
type Analyzer interface {
	AnalyzeByID(ctx context.Context, id string) (*domain.AnalysisResult, error)
}

// AnalysisHandler serves on-demand property analyses.
type AnalysisHandler struct {
	analyzer Analyzer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(a Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: a}
}

// AnalyzePropertyInput identifies the property to analyze.
type AnalyzePropertyInput struct {
	ID string `path:"id" doc:"Property ID" minLength:"1"`
}

// AnalyzePropertyOutput is the full analysis result.
type AnalyzePropertyOutput struct {
	Body *domain.AnalysisResult
}

// AnalyzeProperty analyzes a property, stores the result and returns it.
func (h *AnalysisHandler) AnalyzeProperty(
	ctx context.Context,
	input *AnalyzePropertyInput,
) (*AnalyzePropertyOutput, error) {
	res, err := h.analyzer.AnalyzeByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, engine.ErrPropertyNotFound) {
			return nil, huma.Error404NotFound("property not found: " + input.ID)
		}
		return nil, huma.Error500InternalServerError("analysis failed: " + err.Error())
	}

	return &AnalyzePropertyOutput{Body: res}, nil
}

// RegisterAnalysisRoutes registers the analysis endpoint with the Huma API.
func RegisterAnalysisRoutes(api huma.API, h *AnalysisHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-property",
		Method:      http.MethodPost,
		Path:        "/api/v1/properties/{id}/analysis",
		Summary:     "Analyze a property",
		Description: "Computes market position, agent intelligence, momentum, scarcity " +
			"and investment potential for a property, persists the result and returns it.",
		Tags:   []string{"analysis"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.AnalyzeProperty)
}
