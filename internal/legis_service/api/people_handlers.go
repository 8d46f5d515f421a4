package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/legis_service/store"
)

// peopleFilterFromQuery assembles the people list filter from the query
// string. searchParam names the free-text parameter: "search" on the
// regular list, "q" on the search endpoint.
func peopleFilterFromQuery(c *gin.Context, searchParam string) store.PeopleFilter {
	limit, offset := parsePage(c)
	return store.PeopleFilter{
		Position: c.Query("type"),
		Congress: intQuery(c, "congress"),
		LastName: c.Query("last_name"),
		Search:   c.Query(searchParam),
		Sort:     c.Query("sort"),
		Dir:      c.Query("dir"),
		Limit:    limit,
		Offset:   offset,
	}
}

// ListPeople handles GET /people.
func (h *Handler) ListPeople(c *gin.Context) {
	filter := peopleFilterFromQuery(c, "search")

	people, total, err := h.service.ListPeople(c.Request.Context(), filter)
	if err != nil {
		respondFailure(c, h.logger(c), "people.list", "", err)
		return
	}
	respondPage(c, people, total, filter.Limit, filter.Offset, int64(len(people)))
}

// GetPerson handles GET /people/:id.
func (h *Handler) GetPerson(c *gin.Context) {
	id := c.Param("id")

	person, err := h.service.GetPerson(c.Request.Context(), id, boolQuery(c, "include_congresses"))
	if err != nil {
		respondFailure(c, h.logger(c), "people.get",
			fmt.Sprintf("Person with id '%s' not found", id), err)
		return
	}
	respondOK(c, person)
}

// GetPersonCongresses handles GET /people/:id/congresses.
func (h *Handler) GetPersonCongresses(c *gin.Context) {
	id := c.Param("id")

	memberships, err := h.service.GetPersonCongresses(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, h.logger(c), "people.congresses",
			fmt.Sprintf("Person with id '%s' not found", id), err)
		return
	}
	respondOK(c, memberships)
}

// ListPersonDocuments handles GET /people/:id/documents.
func (h *Handler) ListPersonDocuments(c *gin.Context) {
	id := c.Param("id")
	limit, offset := parsePage(c)

	documents, total, err := h.service.ListPersonDocuments(c.Request.Context(), id,
		intQuery(c, "congress"), subtypeQuery(c), limit, offset)
	if err != nil {
		respondFailure(c, h.logger(c), "people.documents",
			fmt.Sprintf("Person with id '%s' not found", id), err)
		return
	}
	respondPage(c, documents, total, limit, offset, int64(len(documents)))
}
