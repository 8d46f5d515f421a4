package store

import (
	"context"
	"fmt"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/models"
)

// fullNameExpr derives full_name in Cypher: first + middle? + last + suffix?.
const fullNameExpr = `p.first_name + ' ' +
  CASE WHEN p.middle_name IS NOT NULL THEN p.middle_name + ' ' ELSE '' END +
  p.last_name +
  CASE WHEN p.name_suffix IS NOT NULL THEN ' ' + p.name_suffix ELSE '' END`

const personReturn = `p.id as id,
       p.first_name as first_name,
       p.last_name as last_name,
       p.middle_name as middle_name,
       p.name_prefix as name_prefix,
       p.name_suffix as name_suffix,
       ` + fullNameExpr + ` as full_name,
       p.professional_designations as professional_designations,
       p.senate_website_keys as senate_website_keys,
       p.congress_website_primary_keys as congress_website_primary_keys,
       p.congress_website_author_keys as congress_website_author_keys,
       p.aliases as aliases`

// personSearchClause matches a person's names, derived full name, or any
// alias, case-insensitively.
const personSearchClause = `(
  toLower(p.first_name) CONTAINS toLower($search) OR
  toLower(p.last_name) CONTAINS toLower($search) OR
  toLower(p.middle_name) CONTAINS toLower($search) OR
  toLower(` + fullNameExpr + `) CONTAINS toLower($search) OR
  ANY(alias IN p.aliases WHERE toLower(alias) CONTAINS toLower($search))
)`

// PeopleFilter holds the recognized filters for the people list.
type PeopleFilter struct {
	Position string // "senator" or "representative"
	Congress *int64 // congress_number
	LastName string // exact match
	Search   string
	Sort     string // last_name (default) or first_name
	Dir      string // asc (default) or desc
	Limit    int64
	Offset   int64
}

// needsMembership reports whether the filter requires the SERVED_IN join.
func (f PeopleFilter) needsMembership() bool {
	return f.Position != "" || f.Congress != nil
}

// peopleOrderBy resolves the sort field against the allow-list, always
// attaching the other name field as the deterministic tie-break.
func peopleOrderBy(sort, dir string) string {
	direction := graph.Direction(dir, "ASC")
	switch sort {
	case "first_name":
		return fmt.Sprintf("p.first_name %s, p.last_name", direction)
	case "last_name":
		return fmt.Sprintf("p.last_name %s, p.first_name", direction)
	default:
		return fmt.Sprintf("p.last_name %s, p.first_name", direction)
	}
}

// buildPeopleQuery renders the count and data statements for the people
// list from one shared predicate. When a membership filter is active the
// match goes through SERVED_IN; otherwise people without any membership
// are still listed.
func buildPeopleQuery(f PeopleFilter) (countQuery, dataQuery string, params map[string]any) {
	pred := graph.NewPredicate()

	if f.Position != "" {
		pred.Add("r.position = $type", map[string]any{"type": f.Position})
	}
	if f.Congress != nil {
		pred.Add("c.congress_number = $congress", map[string]any{"congress": *f.Congress})
	}
	if f.LastName != "" {
		pred.Add("p.last_name = $last_name", map[string]any{"last_name": f.LastName})
	}
	if f.Search != "" {
		pred.Add(personSearchClause, map[string]any{"search": f.Search})
	}

	where := pred.Where()
	orderBy := peopleOrderBy(f.Sort, f.Dir)

	if f.needsMembership() {
		countQuery = fmt.Sprintf(`MATCH (p:Person)-[r:SERVED_IN]->(c:Congress)
%s
RETURN COUNT(DISTINCT p) as total`, where)

		dataQuery = fmt.Sprintf(`MATCH (p:Person)-[r:SERVED_IN]->(c:Congress)
%s
WITH DISTINCT p
ORDER BY %s
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
ORDER BY %s`, where, orderBy, personReturn, orderBy)
	} else {
		countQuery = fmt.Sprintf(`MATCH (p:Person)
%s
RETURN COUNT(DISTINCT p) as total`, where)

		dataQuery = fmt.Sprintf(`MATCH (p:Person)
%s
WITH p
ORDER BY %s
SKIP $offset
LIMIT $limit
OPTIONAL MATCH (p)-[r:SERVED_IN]->(c:Congress)
WITH p, COLLECT(DISTINCT {
  congress_id: c.id,
  congress_number: c.congress_number,
  congress_ordinal: c.ordinal,
  position: r.position,
  year_range: c.year_range
}) as congresses_served
RETURN %s,
       congresses_served
ORDER BY %s`, where, orderBy, personReturn, orderBy)
	}

	params = pred.Params()
	params["offset"] = f.Offset
	params["limit"] = f.Limit
	return countQuery, dataQuery, params
}

// ListPeople returns one page of people plus the total matching the same
// predicate. Each person carries their congress membership history.
func (s *Store) ListPeople(ctx context.Context, f PeopleFilter) ([]models.Person, int64, error) {
	countQuery, dataQuery, params := buildPeopleQuery(f)

	total, err := s.count(ctx, countQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count people: %w", err)
	}

	rows, err := s.db.ReadQuery(ctx, dataQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}

	people := make([]models.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, mapPerson(row))
	}
	return people, total, nil
}

// GetPerson looks up a single person by opaque id. People have no numeric
// business key.
func (s *Store) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	query := fmt.Sprintf(`MATCH (p:Person {id: $id})
RETURN %s
LIMIT 1`, personReturn)

	rows, err := s.db.ReadQuery(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch person: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	person := mapPerson(rows[0])
	return &person, nil
}

// PersonExists reports whether a person node with the given id exists.
func (s *Store) PersonExists(ctx context.Context, id string) (bool, error) {
	rows, err := s.db.ReadQuery(ctx, `MATCH (p:Person {id: $id})
RETURN p.id
LIMIT 1`, map[string]any{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to check person: %w", err)
	}
	return len(rows) > 0, nil
}

// GetPersonCongressHistory returns a person's service record derived from
// chamber (Group) memberships, most recent congress first.
func (s *Store) GetPersonCongressHistory(ctx context.Context, id string) ([]models.CongressMembership, error) {
	query := `MATCH (p:Person {id: $id})-[:MEMBER_OF]->(g:Group {type: "chamber"})-[:BELONGS_TO]->(c:Congress)
RETURN c.id as congress_id,
       c.congress_number as congress_number,
       c.ordinal as congress_ordinal,
       CASE WHEN g.subtype = 'senate' THEN 'senator' ELSE 'representative' END as position,
       g.subtype as chamber,
       c.start_date as start_date,
       c.end_date as end_date,
       c.year_range as year_range
ORDER BY c.congress_number DESC`

	rows, err := s.db.ReadQuery(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch congress history: %w", err)
	}

	memberships := make([]models.CongressMembership, 0, len(rows))
	for _, row := range rows {
		memberships = append(memberships, models.CongressMembership{
			CongressID:      asString(row["congress_id"]),
			CongressNumber:  asInt64(row["congress_number"]),
			CongressOrdinal: asString(row["congress_ordinal"]),
			Position:        asString(row["position"]),
			Chamber:         asString(row["chamber"]),
			StartDate:       asString(row["start_date"]),
			EndDate:         asString(row["end_date"]),
			YearRange:       asString(row["year_range"]),
		})
	}
	return memberships, nil
}

// GetPersonServiceHistory returns the congresses a person served in, read
// from the SERVED_IN relationships, most recent congress first. Unlike the
// chamber-derived history this carries the relationship's own position and
// type plus the congress name.
func (s *Store) GetPersonServiceHistory(ctx context.Context, id string) ([]models.CongressMembership, error) {
	query := `MATCH (p:Person {id: $id})-[r:SERVED_IN]->(c:Congress)
RETURN c.id as congress_id,
       c.congress_number as congress_number,
       c.ordinal as congress_ordinal,
       c.name as congress_name,
       c.year_range as year_range,
       r.position as position,
       r.type as type,
       c.start_date as start_date,
       c.end_date as end_date
ORDER BY c.congress_number DESC`

	rows, err := s.db.ReadQuery(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service history: %w", err)
	}

	memberships := make([]models.CongressMembership, 0, len(rows))
	for _, row := range rows {
		memberships = append(memberships, models.CongressMembership{
			CongressID:      asString(row["congress_id"]),
			CongressNumber:  asInt64(row["congress_number"]),
			CongressOrdinal: asString(row["congress_ordinal"]),
			CongressName:    asString(row["congress_name"]),
			Position:        asString(row["position"]),
			Type:            asString(row["type"]),
			StartDate:       asString(row["start_date"]),
			EndDate:         asString(row["end_date"]),
			YearRange:       asString(row["year_range"]),
		})
	}
	return memberships, nil
}

// mapPerson maps a normalized row onto a Person, including the collected
// congresses_served block when present.
func mapPerson(row map[string]any) models.Person {
	person := models.Person{
		ID:                         asString(row["id"]),
		FirstName:                  asString(row["first_name"]),
		LastName:                   asString(row["last_name"]),
		MiddleName:                 asString(row["middle_name"]),
		NamePrefix:                 asString(row["name_prefix"]),
		NameSuffix:                 asString(row["name_suffix"]),
		FullName:                   asString(row["full_name"]),
		ProfessionalDesignations:   asStringSlice(row["professional_designations"]),
		SenateWebsiteKeys:          asStringSlice(row["senate_website_keys"]),
		CongressWebsitePrimaryKeys: asInt64Slice(row["congress_website_primary_keys"]),
		CongressWebsiteAuthorKeys:  asStringSlice(row["congress_website_author_keys"]),
		Aliases:                    asStringSlice(row["aliases"]),
	}

	for _, item := range asMapSlice(row["congresses_served"]) {
		// The COLLECT emits a null-field stub for people without any
		// membership; skip it.
		if item["congress_id"] == nil {
			continue
		}
		person.CongressesServed = append(person.CongressesServed, models.CongressMembership{
			CongressID:      asString(item["congress_id"]),
			CongressNumber:  asInt64(item["congress_number"]),
			CongressOrdinal: asString(item["congress_ordinal"]),
			Position:        asString(item["position"]),
			YearRange:       asString(item["year_range"]),
		})
	}
	return person
}
