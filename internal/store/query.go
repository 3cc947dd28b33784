package store

import (
	"fmt"
	"strings"
)

const (
	maxLimit = 1000

	orderByRecent = "recent"
	orderByOldest = "oldest"
	orderByPrice  = "price"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByRecent: "COALESCE(listing_date, created_at) DESC, id ASC",
	orderByOldest: "COALESCE(listing_date, created_at) ASC, id ASC",
	orderByPrice:  "asking_price ASC, id ASC",
}

const defaultOrderBy = "COALESCE(listing_date, created_at) DESC, id ASC"

const basePropertiesSelect = `SELECT id, title, location, neighborhood, property_type,
	asking_price, total_area, internal_area,
	condition, floor_level, bedrooms, bathrooms, features,
	agent_name, agent_email, agent_phone,
	status, is_active, listing_date, removed_at, created_at,
	investment_score, recommendation
FROM properties`

// ToSQL builds the data query and its positional parameters.
func (q *PropertyQuery) ToSQL() (string, []any) {
	var conditions []string
	var args []any
	paramIdx := 1

	if q.LocationKey != nil {
		conditions = append(conditions, fmt.Sprintf("location_key = $%d", paramIdx))
		args = append(args, *q.LocationKey)
		paramIdx++
	}

	if q.PropertyType != nil {
		conditions = append(conditions, fmt.Sprintf("property_type = $%d", paramIdx))
		args = append(args, string(*q.PropertyType))
		paramIdx++
	}

	if len(q.Statuses) > 0 {
		placeholders := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, string(s))
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"status IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	if q.Agent != nil {
		conditions = append(conditions, fmt.Sprintf(
			`lower(btrim(agent_name, E' \t\r\n')) = $%d AND lower(btrim(agent_email, E' \t\r\n')) = $%d`,
			paramIdx, paramIdx+1,
		))
		args = append(args, q.Agent.Name, q.Agent.Email)
		paramIdx += 2
	}

	if q.ExcludeID != "" {
		conditions = append(conditions, fmt.Sprintf("id::text <> $%d", paramIdx))
		args = append(args, q.ExcludeID)
	}

	if q.PricedOnly {
		conditions = append(conditions, "asking_price > 0")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	sql := fmt.Sprintf("%s%s ORDER BY %s", basePropertiesSelect, whereClause, orderClause)
	if q.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", min(q.Limit, maxLimit))
	}

	return sql, args
}

// supplyFilter builds the WHERE clause shared by the supply count queries.
// The returned paramIdx is the next free placeholder.
func (q SupplyQuery) supplyFilter() (clause string, args []any, paramIdx int) {
	conditions := []string{"location_key = $1", "property_type = $2"}
	args = []any{q.LocationKey, string(q.PropertyType)}
	paramIdx = 3

	if q.MaxArea > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"((internal_area BETWEEN $%d AND $%d) OR (total_area BETWEEN $%d AND $%d))",
			paramIdx, paramIdx+1, paramIdx, paramIdx+1,
		))
		args = append(args, q.MinArea, q.MaxArea)
		paramIdx += 2
	}

	return strings.Join(conditions, " AND "), args, paramIdx
}

// activeCountSQL counts listings still on the market in the segment.
func (q SupplyQuery) activeCountSQL() (string, []any) {
	clause, args, _ := q.supplyFilter()
	return "SELECT COUNT(*) FROM properties WHERE " + clause +
		" AND is_active AND removed_at IS NULL", args
}

// soldCountSQL counts listings in the segment that left the market within
// the last sinceMonthsAgo months.
func (q SupplyQuery) soldCountSQL(sinceMonthsAgo int) (string, []any) {
	clause, args, paramIdx := q.supplyFilter()
	args = append(args, sinceMonthsAgo)
	return fmt.Sprintf(
		"SELECT COUNT(*) FROM properties WHERE %s AND NOT is_active"+
			" AND removed_at >= now() - make_interval(months => $%d)",
		clause, paramIdx,
	), args
}
