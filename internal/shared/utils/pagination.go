package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reelhub/reelhub/internal/shared/constants"
)

// Pagination holds parsed pagination parameters. Page is zero-based.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination normalizes pagination parameters.
// Page defaults to DefaultPage when negative. PageSize defaults to
// DefaultPageSize when less than 1 and is capped at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 0 {
		page = constants.DefaultPage
	}

	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParsePagination parses "page" and "page_size" query parameters from the
// Gin context and returns validated pagination.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	return ValidatePagination(page, pageSize)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates the number of pages for a total count. An empty
// result set has zero pages.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
