package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/legis_service/store"
	"github.com/phlegis/batasan-api/internal/models"
	"github.com/phlegis/batasan-api/pkg/logger"
)

// respondOK writes a success envelope without pagination.
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, models.OK(data))
}

// respondPage writes a success envelope with a pagination block derived
// from the count total and the returned slice length.
func respondPage(c *gin.Context, data interface{}, total, limit, offset, returned int64) {
	c.JSON(http.StatusOK, models.OKPage(data, models.NewPagination(total, limit, offset, returned)))
}

// respondError writes an error envelope with the given status.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.Fail(code, message))
}

// respondFailure translates a service error: ErrNotFound becomes a 404
// with the entity-specific message, everything else is logged with the
// failing operation and surfaced as a 500 FETCH_ERROR carrying the
// underlying message (the data is public; error text is not sensitive).
func respondFailure(c *gin.Context, log *logger.Logger, op, notFoundMessage string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, models.CodeNotFound, notFoundMessage)
		return
	}
	log.WithOperation(op).WithError(err).Error("query failed")
	respondError(c, http.StatusInternalServerError, models.CodeFetchError, err.Error())
}
