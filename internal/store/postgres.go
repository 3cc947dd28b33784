package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/property-market-engine/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if !strings.Contains(connString, "pool_max_conns") {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Pool exposes the underlying pool for fixtures and ad-hoc tooling.
func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetProperty returns a single property by ID, or ErrNotFound.
func (s *PostgresStore) GetProperty(ctx context.Context, id string) (*domain.PropertyRecord, error) {
	var p domain.PropertyRecord
	if err := scanProperty(s.pool.QueryRow(ctx, queryGetProperty, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting property %s: %w", id, err)
	}
	return &p, nil
}

// ListProperties returns the properties matching q.
func (s *PostgresStore) ListProperties(
	ctx context.Context,
	q *PropertyQuery,
) ([]domain.PropertyRecord, error) {
	sql, args := q.ToSQL()
	return s.queryProperties(ctx, sql, args...)
}

// ListPendingProperties returns the oldest properties still awaiting analysis.
func (s *PostgresStore) ListPendingProperties(
	ctx context.Context,
	limit int,
) ([]domain.PropertyRecord, error) {
	return s.ListProperties(ctx, &PropertyQuery{
		Statuses: []domain.Status{domain.StatusAnalyzing},
		OrderBy:  orderByOldest,
		Limit:    limit,
	})
}

// FetchComparables returns completed, priced properties in the same location
// and type, newest first, excluding excludeID.
func (s *PostgresStore) FetchComparables(
	ctx context.Context,
	locationKey string,
	propertyType domain.PropertyType,
	excludeID string,
) ([]domain.PropertyRecord, error) {
	return s.ListProperties(ctx, &PropertyQuery{
		LocationKey:  &locationKey,
		PropertyType: &propertyType,
		Statuses:     []domain.Status{domain.StatusCompleted},
		ExcludeID:    excludeID,
		PricedOnly:   true,
		OrderBy:      orderByRecent,
	})
}

// FetchAgentListings returns every priced listing attributed to agent.
func (s *PostgresStore) FetchAgentListings(
	ctx context.Context,
	agent domain.AgentIdentity,
) ([]domain.PropertyRecord, error) {
	return s.ListProperties(ctx, &PropertyQuery{
		Agent:      &agent,
		PricedOnly: true,
		OrderBy:    orderByRecent,
	})
}

// FetchActiveCount counts listings still on the market in the segment.
func (s *PostgresStore) FetchActiveCount(ctx context.Context, q SupplyQuery) (int, error) {
	sql, args := q.activeCountSQL()
	var n int
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting active supply: %w", err)
	}
	return n, nil
}

// FetchSoldCount counts listings in the segment removed from the market
// within the last sinceMonthsAgo months.
func (s *PostgresStore) FetchSoldCount(
	ctx context.Context,
	q SupplyQuery,
	sinceMonthsAgo int,
) (int, error) {
	sql, args := q.soldCountSQL(sinceMonthsAgo)
	var n int
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sold supply: %w", err)
	}
	return n, nil
}

// FetchRentBenchmark returns the rent benchmark for a location, or ErrNotFound.
func (s *PostgresStore) FetchRentBenchmark(
	ctx context.Context,
	locationKey string,
) (*domain.RentBenchmark, error) {
	var b domain.RentBenchmark
	err := s.pool.QueryRow(ctx, queryGetRentBenchmark, locationKey).Scan(
		&b.LocationKey, &b.RentPerArea, &b.AverageYield, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting rent benchmark for %s: %w", locationKey, err)
	}
	return &b, nil
}

// FetchAppreciationRate returns the annual appreciation rate (percent) for a
// location, or ErrNotFound.
func (s *PostgresStore) FetchAppreciationRate(ctx context.Context, locationKey string) (float64, error) {
	var rate float64
	if err := s.pool.QueryRow(ctx, queryGetAppreciationRate, locationKey).Scan(&rate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("getting appreciation rate for %s: %w", locationKey, err)
	}
	return rate, nil
}

// SaveAnalysis stores the analysis document and marks the property completed.
func (s *PostgresStore) SaveAnalysis(
	ctx context.Context,
	id string,
	result *domain.AnalysisResult,
) error {
	doc, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling analysis for %s: %w", id, err)
	}

	tag, err := s.pool.Exec(ctx, querySaveAnalysis, pgx.NamedArgs{
		"id":               id,
		"investment_score": result.InvestmentScore,
		"recommendation":   string(result.Recommendation),
		"analysis":         doc,
	})
	if err != nil {
		return fmt.Errorf("saving analysis for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAnalysisFailed flags a property whose analysis could not complete.
func (s *PostgresStore) MarkAnalysisFailed(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryMarkAnalysisFailed, id)
	if err != nil {
		return fmt.Errorf("marking analysis failed for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// queryProperties runs a property select and scans every row.
func (s *PostgresStore) queryProperties(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.PropertyRecord, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.PropertyRecord
	for rows.Next() {
		var p domain.PropertyRecord
		if err := scanProperty(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanProperty scans a row selected with basePropertiesSelect.
func scanProperty(row scannable, p *domain.PropertyRecord) error {
	var (
		propertyType, condition, status string
		features                        []string
		recommendation                  *string
	)
	if err := row.Scan(
		&p.ID, &p.Title, &p.Location, &p.Neighborhood, &propertyType,
		&p.AskingPrice, &p.TotalArea, &p.InternalArea,
		&condition, &p.FloorLevel, &p.Bedrooms, &p.Bathrooms, &features,
		&p.AgentName, &p.AgentEmail, &p.AgentPhone,
		&status, &p.IsActive, &p.ListingDate, &p.RemovedAt, &p.CreatedAt,
		&p.InvestmentScore, &recommendation,
	); err != nil {
		return err
	}

	p.PropertyType = domain.PropertyType(propertyType)
	p.Condition = domain.Condition(condition)
	p.Status = domain.Status(status)
	p.Features = make([]domain.Feature, 0, len(features))
	for _, f := range features {
		p.Features = append(p.Features, domain.Feature(f))
	}
	if recommendation != nil {
		r := domain.Recommendation(*recommendation)
		p.Recommendation = &r
	}
	return nil
}
