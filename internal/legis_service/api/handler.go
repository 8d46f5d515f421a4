// Package api exposes the legislative graph over REST: gin handlers that
// parse and clamp query parameters, delegate to the service layer, and
// wrap results in the uniform response envelope.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/legis_service/store"
	"github.com/phlegis/batasan-api/internal/models"
	"github.com/phlegis/batasan-api/pkg/logger"
)

// LegisService is the service surface the handlers depend on. Tests
// substitute a mock.
type LegisService interface {
	Ping(ctx context.Context) error

	ListCongresses(ctx context.Context, f store.CongressFilter) ([]models.Congress, int64, error)
	GetCongress(ctx context.Context, key graph.Key) (*models.Congress, error)
	ListCongressDocuments(ctx context.Context, key graph.Key, f store.DocumentFilter) ([]models.Document, int64, error)
	ListCongressCommittees(ctx context.Context, key graph.Key, committeeType string, limit, offset int64) ([]models.Committee, int64, error)
	ListCongressMembers(ctx context.Context, key graph.Key, position string, limit, offset int64) ([]models.Person, int64, error)

	ListPeople(ctx context.Context, f store.PeopleFilter) ([]models.Person, int64, error)
	GetPerson(ctx context.Context, id string, includeCongresses bool) (*models.Person, error)
	GetPersonCongresses(ctx context.Context, id string) ([]models.CongressMembership, error)
	ListPersonDocuments(ctx context.Context, id string, congress *int64, subtype string, limit, offset int64) ([]models.Document, int64, error)

	ListDocuments(ctx context.Context, f store.DocumentFilter) ([]models.Document, int64, error)
	GetDocument(ctx context.Context, idOrCode string) (*models.Document, error)
	GetDocumentAuthors(ctx context.Context, idOrCode string) ([]models.Person, error)

	GetStats(ctx context.Context) (*models.Stats, error)
}

// Handler holds the handler functions for every endpoint.
type Handler struct {
	service LegisService
}

// NewHandler creates a Handler over the given service.
func NewHandler(s LegisService) *Handler {
	return &Handler{service: s}
}

// logger builds a request-scoped logger carrying the trace id assigned by
// the middleware.
func (h *Handler) logger(c *gin.Context) *logger.Logger {
	traceID, _ := c.Get(traceIDKey)
	id, _ := traceID.(string)
	return logger.New("legis_api", id)
}
