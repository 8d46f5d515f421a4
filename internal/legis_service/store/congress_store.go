package store

import (
	"context"
	"fmt"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/models"
)

// CongressFilter holds the recognized filters for the congress list.
type CongressFilter struct {
	Year    *int64 // matches start_year <= year <= end_year
	Ordinal string
	Limit   int64
	Offset  int64
}

const congressReturn = `c.id as id,
       c.congress_number as congress_number,
       c.congress_website_key as congress_website_key,
       c.name as name,
       c.ordinal as ordinal,
       c.start_date as start_date,
       c.end_date as end_date,
       c.start_year as start_year,
       c.end_year as end_year,
       c.year_range as year_range`

// buildCongressesQuery renders the count and data statements for the
// congress list from one shared predicate.
func buildCongressesQuery(f CongressFilter) (countQuery, dataQuery string, params map[string]any) {
	pred := graph.NewPredicate()

	if f.Year != nil {
		pred.Add("(c.start_year <= $year AND c.end_year >= $year)", map[string]any{"year": *f.Year})
	}
	if f.Ordinal != "" {
		pred.Add("c.ordinal = $ordinal", map[string]any{"ordinal": f.Ordinal})
	}

	where := pred.Where()
	countQuery = fmt.Sprintf(`MATCH (c:Congress)
%s
RETURN COUNT(c) as total`, where)

	dataQuery = fmt.Sprintf(`MATCH (c:Congress)
%s
RETURN %s
ORDER BY c.congress_number DESC
SKIP $offset
LIMIT $limit`, where, congressReturn)

	params = pred.Params()
	params["offset"] = f.Offset
	params["limit"] = f.Limit
	return countQuery, dataQuery, params
}

// ListCongresses returns one page of congresses plus the total matching
// the same predicate.
func (s *Store) ListCongresses(ctx context.Context, f CongressFilter) ([]models.Congress, int64, error) {
	countQuery, dataQuery, params := buildCongressesQuery(f)

	total, err := s.count(ctx, countQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count congresses: %w", err)
	}

	rows, err := s.db.ReadQuery(ctx, dataQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list congresses: %w", err)
	}

	congresses := make([]models.Congress, 0, len(rows))
	for _, row := range rows {
		congresses = append(congresses, mapCongress(row))
	}
	return congresses, total, nil
}

// congressKeyCondition renders the match condition for a dual congress key.
func congressKeyCondition(key graph.Key) (condition string, params map[string]any) {
	if key.IsNumeric() {
		return "c.congress_number = $congress_number", map[string]any{"congress_number": key.Number()}
	}
	return "c.id = $id", map[string]any{"id": key.OpaqueID()}
}

// GetCongress looks up a single congress by congress number or opaque id.
func (s *Store) GetCongress(ctx context.Context, key graph.Key) (*models.Congress, error) {
	condition, params := congressKeyCondition(key)
	query := fmt.Sprintf(`MATCH (c:Congress)
WHERE %s
RETURN %s
LIMIT 1`, condition, congressReturn)

	rows, err := s.db.ReadQuery(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch congress: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	congress := mapCongress(rows[0])
	return &congress, nil
}

// CongressCounts are the derived membership and committee counts for one
// congress.
type CongressCounts struct {
	Senators        int64
	Representatives int64
	Committees      int64
}

// GetCongressCounts runs the secondary aggregate for the congress detail.
func (s *Store) GetCongressCounts(ctx context.Context, key graph.Key) (*CongressCounts, error) {
	condition, params := congressKeyCondition(key)
	query := fmt.Sprintf(`MATCH (c:Congress)
WHERE %s
OPTIONAL MATCH (p:Person)-[r:SERVED_IN]->(c)
WITH c,
     COUNT(CASE WHEN r.position = 'senator' THEN 1 END) as total_senators,
     COUNT(CASE WHEN r.position = 'representative' THEN 1 END) as total_representatives
OPTIONAL MATCH (com:Committee)-[:BELONGS_TO]->(c)
RETURN total_senators,
       total_representatives,
       COUNT(DISTINCT com) as total_committees`, condition)

	rows, err := s.db.ReadQuery(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch congress counts: %w", err)
	}
	if len(rows) == 0 {
		return &CongressCounts{}, nil
	}
	return &CongressCounts{
		Senators:        asInt64(rows[0]["total_senators"]),
		Representatives: asInt64(rows[0]["total_representatives"]),
		Committees:      asInt64(rows[0]["total_committees"]),
	}, nil
}

// ResolveCongressNumber maps a dual key to the congress_number, verifying
// the congress exists.
func (s *Store) ResolveCongressNumber(ctx context.Context, key graph.Key) (int64, error) {
	condition, params := congressKeyCondition(key)
	query := fmt.Sprintf(`MATCH (c:Congress)
WHERE %s
RETURN c.congress_number as congress_number
LIMIT 1`, condition)

	rows, err := s.db.ReadQuery(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve congress: %w", err)
	}
	if len(rows) == 0 {
		return 0, ErrNotFound
	}
	return asInt64(rows[0]["congress_number"]), nil
}

// ListCongressCommittees returns one page of a congress's committees.
func (s *Store) ListCongressCommittees(ctx context.Context, key graph.Key, committeeType string, limit, offset int64) ([]models.Committee, int64, error) {
	condition, params := congressKeyCondition(key)

	pred := graph.NewPredicate()
	pred.Add(condition, params)
	if committeeType != "" {
		pred.Add("com.type = $type", map[string]any{"type": committeeType})
	}
	where := pred.Where()

	countQuery := fmt.Sprintf(`MATCH (com:Committee)-[:BELONGS_TO]->(c:Congress)
%s
RETURN COUNT(DISTINCT com) as total`, where)

	dataQuery := fmt.Sprintf(`MATCH (com:Committee)-[:BELONGS_TO]->(c:Congress)
%s
RETURN DISTINCT
       com.id as id,
       com.name as name,
       com.type as type,
       com.senate_website_keys as senate_website_keys
ORDER BY com.name
SKIP $offset
LIMIT $limit`, where)

	queryParams := pred.Params()

	total, err := s.count(ctx, countQuery, queryParams)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count committees: %w", err)
	}

	queryParams["offset"] = offset
	queryParams["limit"] = limit

	rows, err := s.db.ReadQuery(ctx, dataQuery, queryParams)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list committees: %w", err)
	}

	committees := make([]models.Committee, 0, len(rows))
	for _, row := range rows {
		committees = append(committees, models.Committee{
			ID:                asString(row["id"]),
			Name:              asString(row["name"]),
			Type:              asString(row["type"]),
			SenateWebsiteKeys: asStringSlice(row["senate_website_keys"]),
		})
	}
	return committees, total, nil
}

// ListCongressMembers returns one page of the people who served in a
// congress under the given position (senator or representative), each with
// their full congress history attached.
func (s *Store) ListCongressMembers(ctx context.Context, key graph.Key, position string, limit, offset int64) ([]models.Person, int64, error) {
	condition, keyParams := congressKeyCondition(key)

	pred := graph.NewPredicate()
	pred.Add(condition, keyParams)
	pred.Add("r.position = $position", map[string]any{"position": position})
	where := pred.Where()

	countQuery := fmt.Sprintf(`MATCH (p:Person)-[r:SERVED_IN]->(c:Congress)
%s
RETURN COUNT(DISTINCT p) as total`, where)

	dataQuery := fmt.Sprintf(`MATCH (p:Person)-[r:SERVED_IN]->(c:Congress)
%s
WITH DISTINCT p
ORDER BY p.last_name, p.first_name
SKIP $offset
LIMIT $limit
MATCH (p)-[r2:SERVED_IN]->(c2:Congress)
WITH p, COLLECT(DISTINCT {
  congress_id: c2.id,
  congress_number: c2.congress_number,
  congress_ordinal: c2.ordinal,
  position: r2.position,
  year_range: c2.year_range
}) as congresses_served
RETURN %s,
       congresses_served
ORDER BY p.last_name, p.first_name`, where, personReturn)

	queryParams := pred.Params()

	total, err := s.count(ctx, countQuery, queryParams)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count congress members: %w", err)
	}

	queryParams["offset"] = offset
	queryParams["limit"] = limit

	rows, err := s.db.ReadQuery(ctx, dataQuery, queryParams)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list congress members: %w", err)
	}

	people := make([]models.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, mapPerson(row))
	}
	return people, total, nil
}

// mapCongress maps a normalized row onto a Congress.
func mapCongress(row map[string]any) models.Congress {
	return models.Congress{
		ID:                 asString(row["id"]),
		CongressNumber:     asInt64(row["congress_number"]),
		CongressWebsiteKey: asInt64Ptr(row["congress_website_key"]),
		Name:               asString(row["name"]),
		Ordinal:            asString(row["ordinal"]),
		StartDate:          asString(row["start_date"]),
		EndDate:            asString(row["end_date"]),
		StartYear:          asInt64Ptr(row["start_year"]),
		EndYear:            asInt64Ptr(row["end_year"]),
		YearRange:          asString(row["year_range"]),
	}
}
