package store

// SQL query constants organized by entity. PostgresStore methods reference
// these constants; dynamic filters are built in query.go.

// Property queries.
const (
	queryGetProperty = basePropertiesSelect + ` WHERE id::text = $1`

	querySaveAnalysis = `
		UPDATE properties SET
			investment_score = @investment_score,
			recommendation   = @recommendation,
			analysis         = @analysis,
			status           = 'completed',
			analyzed_at      = now()
		WHERE id::text = @id`

	queryMarkAnalysisFailed = `
		UPDATE properties SET status = 'failed', analyzed_at = now()
		WHERE id::text = $1`
)

// Location reference queries.
const (
	queryGetRentBenchmark = `
		SELECT location_key, rent_per_area, average_yield, updated_at
		FROM rent_benchmarks
		WHERE location_key = $1`

	queryGetAppreciationRate = `
		SELECT annual_rate
		FROM appreciation_rates
		WHERE location_key = $1`
)
