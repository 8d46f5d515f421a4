package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/legis_service/store"
)

// fakeRunner dispatches on a substring of the Cypher text.
type fakeRunner struct {
	responses map[string][]map[string]any
}

func (f *fakeRunner) ReadQuery(_ context.Context, cypher string, _ map[string]any) ([]map[string]any, error) {
	for key, rows := range f.responses {
		if strings.Contains(cypher, key) {
			return rows, nil
		}
	}
	return nil, nil
}

func newService(runner store.Runner) *Service {
	return NewService(store.NewStore(runner))
}

func TestGetCongressEnrichesCounts(t *testing.T) {
	runner := &fakeRunner{responses: map[string][]map[string]any{
		"c.year_range as year_range": {{
			"id": "01C", "congress_number": int64(19), "ordinal": "19th",
		}},
		"total_committees": {{
			"total_senators":        int64(24),
			"total_representatives": int64(316),
			"total_committees":      int64(43),
		}},
	}}

	congress, err := newService(runner).GetCongress(context.Background(), graph.ParseKey("19"))

	require.NoError(t, err)
	assert.Equal(t, int64(19), congress.CongressNumber)
	require.NotNil(t, congress.TotalSenators)
	assert.Equal(t, int64(24), *congress.TotalSenators)
	require.NotNil(t, congress.TotalRepresentatives)
	assert.Equal(t, int64(316), *congress.TotalRepresentatives)
	require.NotNil(t, congress.TotalCommittees)
	assert.Equal(t, int64(43), *congress.TotalCommittees)
}

func TestGetCongressNotFound(t *testing.T) {
	_, err := newService(&fakeRunner{}).GetCongress(context.Background(), graph.ParseKey("99"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListCongressDocumentsResolvesCongressFirst(t *testing.T) {
	_, _, err := newService(&fakeRunner{}).ListCongressDocuments(
		context.Background(), graph.ParseKey("99"), store.DocumentFilter{Limit: 20})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListPersonDocumentsPersonMissing(t *testing.T) {
	_, _, err := newService(&fakeRunner{}).ListPersonDocuments(
		context.Background(), "no-such-person", nil, "", 20, 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetDocumentAuthorsDocumentMissing(t *testing.T) {
	_, err := newService(&fakeRunner{}).GetDocumentAuthors(context.Background(), "HB99999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetDocumentAuthorsEmptyListIsNotAnError(t *testing.T) {
	runner := &fakeRunner{responses: map[string][]map[string]any{
		"RETURN d.id": {{"d.id": "01D"}},
	}}

	authors, err := newService(runner).GetDocumentAuthors(context.Background(), "01D")

	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestGetPersonWithCongressHistory(t *testing.T) {
	runner := &fakeRunner{responses: map[string][]map[string]any{
		"p.aliases as aliases": {{
			"id": "01P", "first_name": "Maria", "last_name": "Santos", "full_name": "Maria Santos",
		}},
		"g.subtype as chamber": {
			{"congress_id": "01C", "congress_number": int64(19), "congress_ordinal": "19th", "position": "senator", "chamber": "senate", "year_range": "2022-2025"},
			{"congress_id": "01B", "congress_number": int64(18), "congress_ordinal": "18th", "position": "representative", "chamber": "house", "year_range": "2019-2022"},
		},
	}}

	person, err := newService(runner).GetPerson(context.Background(), "01P", true)

	require.NoError(t, err)
	require.Len(t, person.Congresses, 2)
	assert.Equal(t, "senator", person.Congresses[0].Position)
	assert.Equal(t, "house", person.Congresses[1].Chamber)
}

func TestGetPersonWithoutHistory(t *testing.T) {
	runner := &fakeRunner{responses: map[string][]map[string]any{
		"p.aliases as aliases": {{"id": "01P", "last_name": "Santos"}},
	}}

	person, err := newService(runner).GetPerson(context.Background(), "01P", false)

	require.NoError(t, err)
	assert.Empty(t, person.Congresses)
}

func TestGetPersonCongressesReturnsServiceRecord(t *testing.T) {
	runner := &fakeRunner{responses: map[string][]map[string]any{
		"RETURN p.id": {{"p.id": "01P"}},
		"r.type as type": {{
			"congress_id":     "01C",
			"congress_number": int64(19),
			"congress_name":   "19th Congress",
			"position":        "representative",
			"type":            "regular",
		}},
	}}

	history, err := newService(runner).GetPersonCongresses(context.Background(), "01P")

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "19th Congress", history[0].CongressName)
	assert.Equal(t, "representative", history[0].Position)
	assert.Equal(t, "regular", history[0].Type)
}

func TestGetPersonCongressesPersonMissing(t *testing.T) {
	_, err := newService(&fakeRunner{}).GetPersonCongresses(context.Background(), "no-such-person")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetStatsMergesConcurrentQueries(t *testing.T) {
	runner := &fakeRunner{responses: map[string][]map[string]any{
		"total_committees": {{
			"total_bills":         int64(10),
			"total_house_bills":   int64(6),
			"total_senate_bills":  int64(4),
			"total_congresses":    int64(2),
			"total_people":        int64(50),
			"total_committees":    int64(7),
			"bills_with_dates":    int64(8),
			"bills_without_dates": int64(2),
		}},
		"ORDER BY congress DESC": {
			{"congress": int64(19), "total": int64(6), "house_bills": int64(4), "senate_bills": int64(2)},
			{"congress": int64(18), "total": int64(4), "house_bills": int64(2), "senate_bills": int64(2)},
		},
	}}

	stats, err := newService(runner).GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalBills)
	require.Len(t, stats.BillsByCongress, 2)
	assert.Equal(t, int64(19), stats.BillsByCongress[0].Congress)
	assert.Equal(t, stats.TotalBills, stats.TotalHouseBills+stats.TotalSenateBills)
}
