package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/donaldgifford/property-market-engine/internal/engine"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// SweepResult is the response of a manual pending sweep.
type SweepResult struct {
	engine.SweepSummary
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// AnalyzeProperty runs and persists the analysis of a stored property.
func (c *Client) AnalyzeProperty(ctx context.Context, id string) (*domain.AnalysisResult, error) {
	var res domain.AnalysisResult
	path := fmt.Sprintf("/api/v1/properties/%s/analysis", url.PathEscape(id))
	if err := c.post(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetMarket returns the snapshot and momentum of a location and property type.
func (c *Client) GetMarket(
	ctx context.Context,
	location string,
	pt domain.PropertyType,
) (*engine.MarketView, error) {
	var view engine.MarketView
	path := fmt.Sprintf("/api/v1/markets/%s/%s", url.PathEscape(location), url.PathEscape(string(pt)))
	if err := c.get(ctx, path, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Sweep analyzes all pending properties now.
func (c *Client) Sweep(ctx context.Context) (*SweepResult, error) {
	var res SweepResult
	if err := c.post(ctx, "/api/v1/analyses/sweep", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Health returns the liveness and readiness statuses.
func (c *Client) Health(ctx context.Context) (live, ready string, err error) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/healthz", &body); err != nil {
		return "", "", err
	}
	live = body.Status

	body.Status = ""
	if err := c.get(ctx, "/readyz", &body); err != nil {
		return live, "", err
	}
	return live, body.Status, nil
}
