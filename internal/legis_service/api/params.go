package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phlegis/batasan-api/internal/models"
)

// parsePage reads limit and offset from the query string, applying the
// default page size, the hard maximum of 100, and a floor of 0 on offset.
// Offsets beyond the total are allowed; they produce an empty page.
func parsePage(c *gin.Context) (limit, offset int64) {
	limit = models.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = n
		}
	}
	limit = models.ClampLimit(limit)

	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			offset = n
		}
	}
	return limit, offset
}

// intQuery reads an optional integer query parameter. Absent or
// non-numeric values yield nil.
func intQuery(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// subtypeQuery reads the bill type parameter, upper-casing it to match the
// stored data. "all" means no filter.
func subtypeQuery(c *gin.Context) string {
	raw := c.Query("type")
	if raw == "" || strings.EqualFold(raw, "all") {
		return ""
	}
	return strings.ToUpper(raw)
}

// boolQuery reads a truthy query parameter ("true" or "1").
func boolQuery(c *gin.Context, name string) bool {
	raw := c.Query(name)
	return raw == "true" || raw == "1"
}
