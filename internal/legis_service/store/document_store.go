package store

import (
	"context"
	"fmt"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/models"
)

const documentReturn = `d.id as id,
       d.type as type,
       d.subtype as subtype,
       d.name as name,
       d.bill_number as bill_number,
       d.congress as congress,
       d.title as title,
       d.long_title as long_title,
       d.congress_website_title as congress_website_title,
       d.congress_website_abstract as congress_website_abstract,
       d.date_filed as date_filed,
       d.scope as scope,
       d.subjects as subjects,
       d.authors_raw as authors_raw,
       d.senate_website_permalink as senate_website_permalink,
       d.download_url_sources as download_url_sources`

// authorCollect is the author projection embedded in document list rows.
const authorCollect = `COLLECT(DISTINCT {
  id: p.id,
  first_name: p.first_name,
  middle_name: p.middle_name,
  last_name: p.last_name,
  name_suffix: p.name_suffix,
  aliases: p.aliases
}) as authors`

// documentSearchClause matches the document's text fields or, through an
// existence sub-query, any author's names or aliases. The abstract field
// is congress_website_abstract throughout; the graph stores no plain
// "abstract" property.
const documentSearchClause = `(
  toLower(d.title) CONTAINS toLower($search) OR
  toLower(d.long_title) CONTAINS toLower($search) OR
  toLower(d.name) CONTAINS toLower($search) OR
  toLower(d.congress_website_title) CONTAINS toLower($search) OR
  toLower(d.congress_website_abstract) CONTAINS toLower($search) OR
  EXISTS {
    MATCH (d)<-[:AUTHORED]-(p:Person)
    WHERE toLower(p.first_name) CONTAINS toLower($search) OR
          toLower(p.last_name) CONTAINS toLower($search) OR
          ANY(alias IN p.aliases WHERE toLower(alias) CONTAINS toLower($search))
  }
)`

// authorFilterClause is the required existence check used when filtering
// by author, as opposed to the additive OR inside the search clause.
const authorFilterClause = `EXISTS {
  MATCH (d)<-[:AUTHORED]-(p:Person)
  WHERE toLower(p.last_name) CONTAINS toLower($author)
}`

// DocumentFilter holds the recognized filters for the document list.
type DocumentFilter struct {
	Congress *int64 // congress_number the bill was filed in
	Subtype  string // "HB" or "SB", already upper-cased
	Scope    string // National, Local, Both
	Author   string // author last-name substring, required match
	Search   string
	DateFrom string // inclusive lower bound on date_filed (YYYY-MM-DD)
	DateTo   string // inclusive upper bound
	Sort     string
	Dir      string
	Limit    int64
	Offset   int64
}

// documentOrderBy resolves the sort field against the allow-list. The
// bill code (d.name) is always the deterministic tie-break. The boolean
// reports whether the sort depends on the collected authors aggregate.
func documentOrderBy(sort, dir string) (orderBy string, aggregate bool) {
	direction := graph.Direction(dir, "DESC")
	switch sort {
	case "congress":
		return fmt.Sprintf("d.congress %s, d.name", direction), false
	case "bill_number":
		return fmt.Sprintf("d.bill_number %s, d.name", direction), false
	case "title":
		return fmt.Sprintf("COALESCE(d.title, d.congress_website_title) %s, d.name", direction), false
	case "scope":
		return fmt.Sprintf("d.scope %s, d.name", direction), false
	case "authors_count":
		return fmt.Sprintf("SIZE(authors) %s, d.name", direction), true
	case "date_filed":
		return fmt.Sprintf("d.date_filed %s, d.name", direction), false
	default:
		return "d.date_filed DESC, d.name", false
	}
}

// documentPredicate builds the shared WHERE predicate for a document
// filter. The d.type = 'bill' guard is always present.
func documentPredicate(f DocumentFilter) *graph.Predicate {
	pred := graph.NewPredicate()
	pred.Add("d.type = 'bill'", nil)

	if f.Congress != nil {
		pred.Add("d.congress = $congress", map[string]any{"congress": *f.Congress})
	}
	if f.Subtype != "" {
		pred.Add("d.subtype = $type", map[string]any{"type": f.Subtype})
	}
	if f.Scope != "" {
		pred.Add("d.scope = $scope", map[string]any{"scope": f.Scope})
	}
	if f.Author != "" {
		pred.Add(authorFilterClause, map[string]any{"author": f.Author})
	}
	if f.Search != "" {
		pred.Add(documentSearchClause, map[string]any{"search": f.Search})
	}
	if f.DateFrom != "" {
		pred.Add("d.date_filed >= $date_from", map[string]any{"date_from": f.DateFrom})
	}
	if f.DateTo != "" {
		pred.Add("d.date_filed <= $date_to", map[string]any{"date_to": f.DateTo})
	}
	return pred
}

// buildDocumentsQuery renders the count and data statements for the
// document list. Scalar sorts page first and aggregate authors after;
// an aggregate sort (authors_count) must collect authors before ordering,
// so there the ORDER BY and the SKIP/LIMIT both follow the aggregation.
func buildDocumentsQuery(f DocumentFilter) (countQuery, dataQuery string, params map[string]any) {
	pred := documentPredicate(f)
	where := pred.Where()
	orderBy, aggregate := documentOrderBy(f.Sort, f.Dir)

	countQuery = fmt.Sprintf(`MATCH (d:Document)
%s
RETURN COUNT(d) as total`, where)

	if aggregate {
		dataQuery = fmt.Sprintf(`MATCH (d:Document)
%s
OPTIONAL MATCH (d)<-[:AUTHORED]-(p:Person)
WITH d, %s
ORDER BY %s
SKIP $offset
LIMIT $limit
RETURN %s,
       CASE WHEN SIZE(authors) > 0 AND authors[0].id IS NOT NULL THEN authors ELSE [] END as authors`,
			where, authorCollect, orderBy, documentReturn)
	} else {
		dataQuery = fmt.Sprintf(`MATCH (d:Document)
%s
WITH d
ORDER BY %s
SKIP $offset
LIMIT $limit
OPTIONAL MATCH (d)<-[:AUTHORED]-(p:Person)
WITH d, %s
RETURN %s,
       CASE WHEN SIZE(authors) > 0 AND authors[0].id IS NOT NULL THEN authors ELSE [] END as authors
ORDER BY %s`,
			where, orderBy, authorCollect, documentReturn, orderBy)
	}

	params = pred.Params()
	params["offset"] = f.Offset
	params["limit"] = f.Limit
	return countQuery, dataQuery, params
}

// ListDocuments returns one page of documents with embedded authors plus
// the total matching the same predicate.
func (s *Store) ListDocuments(ctx context.Context, f DocumentFilter) ([]models.Document, int64, error) {
	countQuery, dataQuery, params := buildDocumentsQuery(f)

	total, err := s.count(ctx, countQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	rows, err := s.db.ReadQuery(ctx, dataQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	documents := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, mapDocument(row))
	}
	return documents, total, nil
}

// GetDocument looks up a single document by opaque id or bill code (e.g.
// "SBN-2674"), with embedded authors and the filing congress.
func (s *Store) GetDocument(ctx context.Context, idOrCode string) (*models.Document, error) {
	query := fmt.Sprintf(`MATCH (d:Document)
WHERE d.id = $id OR d.name = $id
OPTIONAL MATCH (d)<-[:AUTHORED]-(p:Person)
OPTIONAL MATCH (d)-[:FILED_IN]->(c:Congress)
RETURN %s,
       COLLECT(DISTINCT {
         id: p.id,
         first_name: p.first_name,
         middle_name: p.middle_name,
         last_name: p.last_name,
         name_suffix: p.name_suffix,
         full_name: `+fullNameExpr+`
       }) as authors,
       {
         id: c.id,
         congress_number: c.congress_number,
         name: c.name,
         ordinal: c.ordinal,
         year_range: c.year_range
       } as congress_details
LIMIT 1`, documentReturn)

	rows, err := s.db.ReadQuery(ctx, query, map[string]any{"id": idOrCode})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	document := mapDocument(rows[0])

	if details, ok := rows[0]["congress_details"].(map[string]any); ok && details["id"] != nil {
		document.CongressDetails = &models.CongressRef{
			ID:             asString(details["id"]),
			CongressNumber: asInt64Ptr(details["congress_number"]),
			Name:           asString(details["name"]),
			Ordinal:        asString(details["ordinal"]),
			YearRange:      asString(details["year_range"]),
		}
	}
	return &document, nil
}

// DocumentExists reports whether a document matches the id or bill code.
func (s *Store) DocumentExists(ctx context.Context, idOrCode string) (bool, error) {
	rows, err := s.db.ReadQuery(ctx, `MATCH (d:Document)
WHERE d.id = $id OR d.name = $id
RETURN d.id
LIMIT 1`, map[string]any{"id": idOrCode})
	if err != nil {
		return false, fmt.Errorf("failed to check document: %w", err)
	}
	return len(rows) > 0, nil
}

// ListDocumentAuthors returns the authors of a document as full person
// records, ordered by last then first name.
func (s *Store) ListDocumentAuthors(ctx context.Context, idOrCode string) ([]models.Person, error) {
	query := fmt.Sprintf(`MATCH (d:Document)<-[:AUTHORED]-(p:Person)
WHERE d.id = $id OR d.name = $id
RETURN DISTINCT %s
ORDER BY p.last_name, p.first_name`, personReturn)

	rows, err := s.db.ReadQuery(ctx, query, map[string]any{"id": idOrCode})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document authors: %w", err)
	}

	authors := make([]models.Person, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, mapPerson(row))
	}
	return authors, nil
}

// ListPersonDocuments returns one page of the bills authored by a person.
func (s *Store) ListPersonDocuments(ctx context.Context, personID string, congress *int64, subtype string, limit, offset int64) ([]models.Document, int64, error) {
	pred := graph.NewPredicate()
	pred.Add("d.type = 'bill'", nil)
	if congress != nil {
		pred.Add("d.congress = $congress", map[string]any{"congress": *congress})
	}
	if subtype != "" {
		pred.Add("d.subtype = $type", map[string]any{"type": subtype})
	}
	where := pred.Where()

	countQuery := fmt.Sprintf(`MATCH (p:Person {id: $id})-[:AUTHORED]->(d:Document)
%s
RETURN COUNT(d) as total`, where)

	dataQuery := fmt.Sprintf(`MATCH (p:Person {id: $id})-[:AUTHORED]->(d:Document)
%s
WITH d
ORDER BY d.date_filed DESC, d.name
SKIP $offset
LIMIT $limit
RETURN %s
ORDER BY d.date_filed DESC, d.name`, where, documentReturn)

	params := pred.Params()
	params["id"] = personID

	total, err := s.count(ctx, countQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count person documents: %w", err)
	}

	params["offset"] = offset
	params["limit"] = limit

	rows, err := s.db.ReadQuery(ctx, dataQuery, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list person documents: %w", err)
	}

	documents := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, mapDocument(row))
	}
	return documents, total, nil
}

// mapDocument maps a normalized row onto a Document, dropping the
// null-field author stub COLLECT emits for documents without authors.
func mapDocument(row map[string]any) models.Document {
	document := models.Document{
		ID:                      asString(row["id"]),
		Type:                    asString(row["type"]),
		Subtype:                 asString(row["subtype"]),
		Name:                    asString(row["name"]),
		BillNumber:              asInt64Ptr(row["bill_number"]),
		Congress:                asInt64Ptr(row["congress"]),
		Title:                   asString(row["title"]),
		LongTitle:               asString(row["long_title"]),
		CongressWebsiteTitle:    asString(row["congress_website_title"]),
		CongressWebsiteAbstract: asString(row["congress_website_abstract"]),
		DateFiled:               asString(row["date_filed"]),
		Scope:                   asString(row["scope"]),
		Subjects:                asStringSlice(row["subjects"]),
		AuthorsRaw:              asString(row["authors_raw"]),
		SenateWebsitePermalink:  asString(row["senate_website_permalink"]),
		DownloadURLSources:      asStringSlice(row["download_url_sources"]),
	}

	for _, item := range asMapSlice(row["authors"]) {
		if item["id"] == nil {
			continue
		}
		document.Authors = append(document.Authors, models.Author{
			ID:         asString(item["id"]),
			FirstName:  asString(item["first_name"]),
			MiddleName: asString(item["middle_name"]),
			LastName:   asString(item["last_name"]),
			NameSuffix: asString(item["name_suffix"]),
			FullName:   asString(item["full_name"]),
			Aliases:    asStringSlice(item["aliases"]),
		})
	}
	return document
}
