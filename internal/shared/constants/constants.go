// Package constants holds shared constant values.
package constants

// Pagination defaults. Pages are zero-based.
const (
	DefaultPage     = 0
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Database table names.
const (
	TableCategories = "categories"
	TableUsers      = "users"
	TableVideos     = "videos"
)
