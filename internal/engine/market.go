package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/donaldgifford/property-market-engine/pkg/market"
	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// ErrInvalidLocation is returned when a location normalizes to nothing.
var ErrInvalidLocation = errors.New("invalid location")

// MarketView is the current statistical picture of one market segment.
type MarketView struct {
	Snapshot market.Snapshot       `json:"snapshot"`
	Momentum domain.MarketMomentum `json:"momentum"`
}

// MarketSnapshot returns the cached snapshot and momentum of the segment
// identified by a free-text location and a property type.
func (eng *Engine) MarketSnapshot(
	ctx context.Context,
	location string,
	pt domain.PropertyType,
) (*MarketView, error) {
	loc := domain.NormalizeLocation(location)
	if loc == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}

	snap, err := eng.segmentSnapshot(ctx, loc, pt)
	if err != nil {
		return nil, err
	}

	momentum, err := eng.loadMomentum(ctx, loc, pt, snap.Samples)
	if err != nil {
		return nil, err
	}

	return &MarketView{Snapshot: snap, Momentum: momentum}, nil
}
