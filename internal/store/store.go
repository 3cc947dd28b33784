// Package store defines the datastore abstraction for the property market
// engine. Analysis code depends on the Store interface, never on concrete
// implementations, so it can be tested with mocks instead of a database.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist. It aliases
// pgx.ErrNoRows so errors.Is matches either name.
var ErrNotFound = pgx.ErrNoRows

// PropertyQuery defines optional filters for property queries.
type PropertyQuery struct {
	LocationKey  *string
	PropertyType *domain.PropertyType
	Statuses     []domain.Status
	Agent        *domain.AgentIdentity
	ExcludeID    string
	PricedOnly   bool
	Limit        int    // 0 means no limit
	OrderBy      string // "recent", "oldest", "price"
}

// SupplyQuery selects the segment counted for scarcity: same location,
// same type and, when MaxArea > 0, a usable-area band matched against
// either the internal or the total area.
type SupplyQuery struct {
	LocationKey  string
	PropertyType domain.PropertyType
	MinArea      float64
	MaxArea      float64
}

// Store defines all data access operations for the property market engine.
type Store interface {
	Ping(ctx context.Context) error

	// Properties
	GetProperty(ctx context.Context, id string) (*domain.PropertyRecord, error)
	ListPendingProperties(ctx context.Context, limit int) ([]domain.PropertyRecord, error)
	FetchComparables(
		ctx context.Context,
		locationKey string,
		propertyType domain.PropertyType,
		excludeID string,
	) ([]domain.PropertyRecord, error)
	FetchAgentListings(ctx context.Context, agent domain.AgentIdentity) ([]domain.PropertyRecord, error)

	// Supply
	FetchActiveCount(ctx context.Context, q SupplyQuery) (int, error)
	FetchSoldCount(ctx context.Context, q SupplyQuery, sinceMonthsAgo int) (int, error)

	// Location reference data
	FetchRentBenchmark(ctx context.Context, locationKey string) (*domain.RentBenchmark, error)
	FetchAppreciationRate(ctx context.Context, locationKey string) (float64, error)

	// Analysis write-back
	SaveAnalysis(ctx context.Context, id string, result *domain.AnalysisResult) error
	MarkAnalysisFailed(ctx context.Context, id string) error
}
