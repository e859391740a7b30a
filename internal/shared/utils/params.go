package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/shared/errors"
)

// ParseIDParam parses the ":id" path parameter as an unsigned integer.
func ParseIDParam(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid id parameter", raw)
	}
	return uint(id), nil
}

// ParseUintQuery parses an optional unsigned integer query parameter.
// Returns nil when the parameter is absent or malformed.
func ParseUintQuery(c *gin.Context, key string) *uint {
	if val := c.Query(key); val != "" {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil && n > 0 {
			v := uint(n)
			return &v
		}
	}
	return nil
}
