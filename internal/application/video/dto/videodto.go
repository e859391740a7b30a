// Package dto defines the request and response types of the video
// application layer.
package dto

import "time"

// CreateVideoRequest carries the fields for creating a video. CategoryID
// and UserID must reference active records.
type CreateVideoRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"max=1000"`
	URL         string `json:"url" binding:"required,max=500"`
	Duration    *int   `json:"duration" binding:"omitempty,gte=0"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	UserID      uint   `json:"user_id" binding:"required"`
}

// UpdateVideoRequest carries the fields for updating a video. The
// referenced category and user are re-validated even when unchanged.
type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"max=1000"`
	URL         string `json:"url" binding:"required,max=500"`
	Duration    *int   `json:"duration" binding:"omitempty,gte=0"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	UserID      uint   `json:"user_id" binding:"required"`
	Active      bool   `json:"active"`
}

// ListVideosRequest carries listing, search, filtering and sorting
// parameters. Page is zero-based. Ranking, when set, overrides
// SortBy/SortDir.
type ListVideosRequest struct {
	Keyword    string
	CategoryID *uint
	UserID     *uint
	Ranking    string
	Page       int
	PageSize   int
	SortBy     string
	SortDir    string
}

// VideoResponse is the video representation returned to callers
type VideoResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Duration    *int      `json:"duration"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	CategoryID  uint      `json:"category_id"`
	UserID      uint      `json:"user_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListVideosResponse is a paginated video listing
type ListVideosResponse struct {
	Items      []VideoResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
