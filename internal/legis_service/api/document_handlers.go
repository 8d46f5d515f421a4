package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/legis_service/store"
	"github.com/phlegis/batasan-api/internal/models"
)

// documentFilterFromQuery assembles the document list filter from the
// query string. searchParam is "search" on the regular list and "q" on
// the search endpoint.
func documentFilterFromQuery(c *gin.Context, searchParam string) store.DocumentFilter {
	limit, offset := parsePage(c)
	return store.DocumentFilter{
		Congress: intQuery(c, "congress"),
		Subtype:  subtypeQuery(c),
		Scope:    c.Query("scope"),
		Author:   c.Query("author"),
		Search:   c.Query(searchParam),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Sort:     c.Query("sort"),
		Dir:      c.Query("dir"),
		Limit:    limit,
		Offset:   offset,
	}
}

// ListDocuments handles GET /documents (and its /bills alias).
func (h *Handler) ListDocuments(c *gin.Context) {
	filter := documentFilterFromQuery(c, "search")

	documents, total, err := h.service.ListDocuments(c.Request.Context(), filter)
	if err != nil {
		respondFailure(c, h.logger(c), "documents.list", "", err)
		return
	}
	respondPage(c, documents, total, filter.Limit, filter.Offset, int64(len(documents)))
}

// GetDocument handles GET /documents/:id. The id may be an opaque id or a
// bill code such as "SBN-2674".
func (h *Handler) GetDocument(c *gin.Context) {
	id := c.Param("id")

	document, err := h.service.GetDocument(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, h.logger(c), "documents.get",
			fmt.Sprintf("Bill with ID or number \"%s\" not found", id), err)
		return
	}
	respondOK(c, document)
}

// GetDocumentAuthors handles GET /documents/:id/authors.
func (h *Handler) GetDocumentAuthors(c *gin.Context) {
	id := c.Param("id")

	authors, err := h.service.GetDocumentAuthors(c.Request.Context(), id)
	if err != nil {
		respondFailure(c, h.logger(c), "documents.authors",
			fmt.Sprintf("Bill with ID or name \"%s\" not found", id), err)
		return
	}
	respondOK(c, authors)
}

// SearchDocuments handles GET /search/documents. q is required.
func (h *Handler) SearchDocuments(c *gin.Context) {
	if c.Query("q") == "" {
		respondError(c, http.StatusBadRequest, models.CodeFetchError, "missing required parameter: q")
		return
	}
	filter := documentFilterFromQuery(c, "q")

	documents, total, err := h.service.ListDocuments(c.Request.Context(), filter)
	if err != nil {
		respondFailure(c, h.logger(c), "search.documents", "", err)
		return
	}
	respondPage(c, documents, total, filter.Limit, filter.Offset, int64(len(documents)))
}

// SearchPeople handles GET /search/people. q is required.
func (h *Handler) SearchPeople(c *gin.Context) {
	if c.Query("q") == "" {
		respondError(c, http.StatusBadRequest, models.CodeFetchError, "missing required parameter: q")
		return
	}
	filter := peopleFilterFromQuery(c, "q")

	people, total, err := h.service.ListPeople(c.Request.Context(), filter)
	if err != nil {
		respondFailure(c, h.logger(c), "search.people", "", err)
		return
	}
	respondPage(c, people, total, filter.Limit, filter.Offset, int64(len(people)))
}
