package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/graph"
	"github.com/phlegis/batasan-api/internal/legis_service/store"
)

// ListCongresses handles GET /congresses.
func (h *Handler) ListCongresses(c *gin.Context) {
	limit, offset := parsePage(c)
	filter := store.CongressFilter{
		Year:    intQuery(c, "year"),
		Ordinal: c.Query("ordinal"),
		Limit:   limit,
		Offset:  offset,
	}

	congresses, total, err := h.service.ListCongresses(c.Request.Context(), filter)
	if err != nil {
		respondFailure(c, h.logger(c), "congresses.list", "", err)
		return
	}
	respondPage(c, congresses, total, limit, offset, int64(len(congresses)))
}

// GetCongress handles GET /congresses/:id. The id may be a congress number
// or an opaque id.
func (h *Handler) GetCongress(c *gin.Context) {
	key := graph.ParseKey(c.Param("id"))

	congress, err := h.service.GetCongress(c.Request.Context(), key)
	if err != nil {
		respondFailure(c, h.logger(c), "congresses.get",
			fmt.Sprintf("Congress with id '%s' not found", key.Raw()), err)
		return
	}
	respondOK(c, congress)
}

// ListCongressDocuments handles GET /congresses/:id/documents.
func (h *Handler) ListCongressDocuments(c *gin.Context) {
	key := graph.ParseKey(c.Param("id"))
	limit, offset := parsePage(c)
	filter := store.DocumentFilter{
		Subtype: subtypeQuery(c),
		Author:  c.Query("author"),
		Limit:   limit,
		Offset:  offset,
	}

	documents, total, err := h.service.ListCongressDocuments(c.Request.Context(), key, filter)
	if err != nil {
		respondFailure(c, h.logger(c), "congresses.documents",
			fmt.Sprintf("Congress with id '%s' not found", key.Raw()), err)
		return
	}
	respondPage(c, documents, total, limit, offset, int64(len(documents)))
}

// ListCongressCommittees handles GET /congresses/:id/committees.
func (h *Handler) ListCongressCommittees(c *gin.Context) {
	key := graph.ParseKey(c.Param("id"))
	limit, offset := parsePage(c)

	committees, total, err := h.service.ListCongressCommittees(c.Request.Context(), key, c.Query("type"), limit, offset)
	if err != nil {
		respondFailure(c, h.logger(c), "congresses.committees",
			fmt.Sprintf("Congress with id '%s' not found", key.Raw()), err)
		return
	}
	respondPage(c, committees, total, limit, offset, int64(len(committees)))
}

// ListCongressSenators handles GET /congresses/:id/senators.
func (h *Handler) ListCongressSenators(c *gin.Context) {
	h.listCongressMembers(c, "senator", "congresses.senators")
}

// ListCongressRepresentatives handles GET /congresses/:id/representatives.
func (h *Handler) ListCongressRepresentatives(c *gin.Context) {
	h.listCongressMembers(c, "representative", "congresses.representatives")
}

func (h *Handler) listCongressMembers(c *gin.Context, position, op string) {
	key := graph.ParseKey(c.Param("id"))
	limit, offset := parsePage(c)

	members, total, err := h.service.ListCongressMembers(c.Request.Context(), key, position, limit, offset)
	if err != nil {
		respondFailure(c, h.logger(c), op,
			fmt.Sprintf("Congress with id '%s' not found", key.Raw()), err)
		return
	}
	respondPage(c, members, total, limit, offset, int64(len(members)))
}
