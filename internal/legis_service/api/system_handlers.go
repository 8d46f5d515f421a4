package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/models"
)

// GetStats handles GET /stats.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		respondFailure(c, h.logger(c), "stats.get", "", err)
		return
	}
	respondOK(c, stats)
}

// Ping handles GET /ping. A database connectivity failure surfaces as 503
// with a DB_ERROR envelope.
func (h *Handler) Ping(c *gin.Context) {
	if err := h.service.Ping(c.Request.Context()); err != nil {
		h.logger(c).WithOperation("ping").WithError(err).Error("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"database": gin.H{
				"connected": false,
			},
			"error": gin.H{
				"code":    models.CodeDBError,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database": gin.H{
			"connected": true,
		},
	})
}
