package pkg

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam parses the ":id" path parameter as an unsigned integer.
func ParseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// ScopeID parses an optional scope query parameter (e.g. company_id) used
// to constrain list queries. Absent or empty means unscoped and returns 0.
func ScopeID(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}
