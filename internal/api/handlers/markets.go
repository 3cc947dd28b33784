package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/property-market-engine/internal/engine"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// MarketReader returns segment-level market statistics.
type MarketReader interface {
	MarketSnapshot(ctx context.Context, location string, pt domain.PropertyType) (*engine.MarketView, error)
}

// MarketsHandler serves market snapshots.
type MarketsHandler struct {
	markets MarketReader
}

// NewMarketsHandler creates a new MarketsHandler.
func NewMarketsHandler(m MarketReader) *MarketsHandler {
	return &MarketsHandler{markets: m}
}

// GetMarketInput identifies a market segment.
type GetMarketInput struct {
	Location     string `path:"location" doc:"Location, e.g. Tirana" minLength:"1"`
	PropertyType string `path:"type" doc:"Property type" enum:"apartment,villa,commercial,land,other"`
}

// GetMarketOutput is the snapshot and momentum of a segment.
type GetMarketOutput struct {
	Body *engine.MarketView
}

// GetMarket returns the current snapshot of a location and property type.
func (h *MarketsHandler) GetMarket(
	ctx context.Context,
	input *GetMarketInput,
) (*GetMarketOutput, error) {
	view, err := h.markets.MarketSnapshot(ctx, input.Location, domain.PropertyType(input.PropertyType))
	if err != nil {
		if errors.Is(err, engine.ErrInvalidLocation) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("failed to load market: " + err.Error())
	}

	return &GetMarketOutput{Body: view}, nil
}

// RegisterMarketRoutes registers market read endpoints with the Huma API.
func RegisterMarketRoutes(api huma.API, h *MarketsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-market",
		Method:      http.MethodGet,
		Path:        "/api/v1/markets/{location}/{type}",
		Summary:     "Get a market snapshot",
		Description: "Returns price-per-area statistics and momentum for a location and property type.",
		Tags:        []string{"markets"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.GetMarket)
}
