package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/legis_service/store"
	"github.com/phlegis/batasan-api/internal/models"
)

// mockService implements LegisService with overridable functions; unset
// operations return zero values.
type mockService struct {
	ping                  func(ctx context.Context) error
	listCongresses        func(f store.CongressFilter) ([]models.Congress, int64, error)
	getCongress           func(key graph.Key) (*models.Congress, error)
	listCongressDocuments func(key graph.Key, f store.DocumentFilter) ([]models.Document, int64, error)
	listPeople            func(f store.PeopleFilter) ([]models.Person, int64, error)
	getPerson             func(id string, include bool) (*models.Person, error)
	listDocuments         func(f store.DocumentFilter) ([]models.Document, int64, error)
	getDocument           func(id string) (*models.Document, error)
	getDocumentAuthors    func(id string) ([]models.Person, error)
	getStats              func() (*models.Stats, error)
}

func (m *mockService) Ping(ctx context.Context) error {
	if m.ping != nil {
		return m.ping(ctx)
	}
	return nil
}

func (m *mockService) ListCongresses(_ context.Context, f store.CongressFilter) ([]models.Congress, int64, error) {
	if m.listCongresses != nil {
		return m.listCongresses(f)
	}
	return nil, 0, nil
}

func (m *mockService) GetCongress(_ context.Context, key graph.Key) (*models.Congress, error) {
	if m.getCongress != nil {
		return m.getCongress(key)
	}
	return &models.Congress{}, nil
}

func (m *mockService) ListCongressDocuments(_ context.Context, key graph.Key, f store.DocumentFilter) ([]models.Document, int64, error) {
	if m.listCongressDocuments != nil {
		return m.listCongressDocuments(key, f)
	}
	return nil, 0, nil
}

func (m *mockService) ListCongressCommittees(context.Context, graph.Key, string, int64, int64) ([]models.Committee, int64, error) {
	return nil, 0, nil
}

func (m *mockService) ListCongressMembers(context.Context, graph.Key, string, int64, int64) ([]models.Person, int64, error) {
	return nil, 0, nil
}

func (m *mockService) ListPeople(_ context.Context, f store.PeopleFilter) ([]models.Person, int64, error) {
	if m.listPeople != nil {
		return m.listPeople(f)
	}
	return nil, 0, nil
}

func (m *mockService) GetPerson(_ context.Context, id string, include bool) (*models.Person, error) {
	if m.getPerson != nil {
		return m.getPerson(id, include)
	}
	return &models.Person{}, nil
}

func (m *mockService) GetPersonCongresses(context.Context, string) ([]models.CongressMembership, error) {
	return nil, nil
}

func (m *mockService) ListPersonDocuments(context.Context, string, *int64, string, int64, int64) ([]models.Document, int64, error) {
	return nil, 0, nil
}

func (m *mockService) ListDocuments(_ context.Context, f store.DocumentFilter) ([]models.Document, int64, error) {
	if m.listDocuments != nil {
		return m.listDocuments(f)
	}
	return nil, 0, nil
}

func (m *mockService) GetDocument(_ context.Context, id string) (*models.Document, error) {
	if m.getDocument != nil {
		return m.getDocument(id)
	}
	return &models.Document{}, nil
}

func (m *mockService) GetDocumentAuthors(_ context.Context, id string) ([]models.Person, error) {
	if m.getDocumentAuthors != nil {
		return m.getDocumentAuthors(id)
	}
	return nil, nil
}

func (m *mockService) GetStats(context.Context) (*models.Stats, error) {
	if m.getStats != nil {
		return m.getStats()
	}
	return &models.Stats{}, nil
}

func serve(t *testing.T, svc LegisService, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := SetupRouter(NewHandler(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestListDocumentsEnvelopeAndPagination(t *testing.T) {
	svc := &mockService{
		listDocuments: func(f store.DocumentFilter) ([]models.Document, int64, error) {
			return []models.Document{{ID: "01D"}, {ID: "02D"}}, 10, nil
		},
	}

	w, body := serve(t, svc, "/api/v1/documents?limit=2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(10), pagination["total"])
	assert.Equal(t, float64(2), pagination["limit"])
	assert.Equal(t, true, pagination["has_more"])
	assert.Equal(t, "2", pagination["next_cursor"])
}

func TestListDocumentsNoNextCursorOnLastPage(t *testing.T) {
	svc := &mockService{
		listDocuments: func(f store.DocumentFilter) ([]models.Document, int64, error) {
			return []models.Document{{ID: "01D"}}, 1, nil
		},
	}

	_, body := serve(t, svc, "/api/v1/documents")

	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, false, pagination["has_more"])
	assert.NotContains(t, pagination, "next_cursor")
}

func TestListDocumentsLimitClamped(t *testing.T) {
	var captured store.DocumentFilter
	svc := &mockService{
		listDocuments: func(f store.DocumentFilter) ([]models.Document, int64, error) {
			captured = f
			return nil, 0, nil
		},
	}

	serve(t, svc, "/api/v1/documents?limit=500&offset=40")

	assert.Equal(t, int64(100), captured.Limit)
	assert.Equal(t, int64(40), captured.Offset)
}

func TestListDocumentsFilterParsing(t *testing.T) {
	var captured store.DocumentFilter
	svc := &mockService{
		listDocuments: func(f store.DocumentFilter) ([]models.Document, int64, error) {
			captured = f
			return nil, 0, nil
		},
	}

	serve(t, svc, "/api/v1/documents?congress=20&type=hb&scope=National&date_from=2022-01-01")

	require.NotNil(t, captured.Congress)
	assert.Equal(t, int64(20), *captured.Congress)
	// Bill type is upper-cased to match the stored data.
	assert.Equal(t, "HB", captured.Subtype)
	assert.Equal(t, "National", captured.Scope)
	assert.Equal(t, "2022-01-01", captured.DateFrom)
}

func TestListDocumentsEmptyResultIsNot404(t *testing.T) {
	svc := &mockService{
		listDocuments: func(f store.DocumentFilter) ([]models.Document, int64, error) {
			return []models.Document{}, 0, nil
		},
	}

	w, body := serve(t, svc, "/api/v1/documents?congress=99")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestGetDocumentNotFound(t *testing.T) {
	svc := &mockService{
		getDocument: func(id string) (*models.Document, error) {
			return nil, store.ErrNotFound
		},
	}

	w, body := serve(t, svc, "/api/v1/documents/HB00001")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, models.CodeNotFound, errBlock["code"])
	assert.Contains(t, errBlock["message"], "HB00001")
}

func TestGetDocumentFetchError(t *testing.T) {
	svc := &mockService{
		getDocument: func(id string) (*models.Document, error) {
			return nil, errors.New("connection refused")
		},
	}

	w, body := serve(t, svc, "/api/v1/documents/01D")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, models.CodeFetchError, errBlock["code"])
	assert.Equal(t, "connection refused", errBlock["message"])
}

func TestBillsAliasRoutes(t *testing.T) {
	svc := &mockService{
		listDocuments: func(f store.DocumentFilter) ([]models.Document, int64, error) {
			return []models.Document{{ID: "01D"}}, 1, nil
		},
	}

	w, _ := serve(t, svc, "/api/v1/bills")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCongressParsesDualKey(t *testing.T) {
	var captured graph.Key
	svc := &mockService{
		getCongress: func(key graph.Key) (*models.Congress, error) {
			captured = key
			return &models.Congress{}, nil
		},
	}

	serve(t, svc, "/api/v1/congresses/19")
	assert.True(t, captured.IsNumeric())
	assert.Equal(t, int64(19), captured.Number())

	serve(t, svc, "/api/v1/congresses/01J5XV9Q2W")
	assert.False(t, captured.IsNumeric())
	assert.Equal(t, "01J5XV9Q2W", captured.OpaqueID())
}

func TestGetPersonIncludeCongresses(t *testing.T) {
	var captured bool
	svc := &mockService{
		getPerson: func(id string, include bool) (*models.Person, error) {
			captured = include
			return &models.Person{ID: id}, nil
		},
	}

	serve(t, svc, "/api/v1/people/01P")
	assert.False(t, captured)

	serve(t, svc, "/api/v1/people/01P?include_congresses=true")
	assert.True(t, captured)
}

func TestSearchPeopleRequiresQ(t *testing.T) {
	w, body := serve(t, &mockService{}, "/api/v1/search/people")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, models.CodeFetchError, errBlock["code"])
}

func TestSearchPeoplePassesQAsSearch(t *testing.T) {
	var captured store.PeopleFilter
	svc := &mockService{
		listPeople: func(f store.PeopleFilter) ([]models.Person, int64, error) {
			captured = f
			return nil, 0, nil
		},
	}

	serve(t, svc, "/api/v1/search/people?q=aquino")
	assert.Equal(t, "aquino", captured.Search)
}

func TestPingHealthy(t *testing.T) {
	w, body := serve(t, &mockService{}, "/api/v1/ping")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	database := body["database"].(map[string]any)
	assert.Equal(t, true, database["connected"])
}

func TestPingUnhealthy(t *testing.T) {
	svc := &mockService{
		ping: func(ctx context.Context) error { return errors.New("no route to host") },
	}

	w, body := serve(t, svc, "/api/v1/ping")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, body["success"])
	errBlock := body["error"].(map[string]any)
	assert.Equal(t, models.CodeDBError, errBlock["code"])
}

func TestTraceHeaderAssigned(t *testing.T) {
	w, _ := serve(t, &mockService{}, "/api/v1/ping")
	assert.NotEmpty(t, w.Header().Get("X-Trace-Id"))
}
