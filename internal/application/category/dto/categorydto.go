// Package dto defines the request and response types of the category
// application layer.
package dto

import "time"

// CreateCategoryRequest carries the fields for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateCategoryRequest carries the fields for updating a category.
// The update overwrites name, description and the active flag.
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	Active      bool   `json:"active"`
}

// ListCategoriesRequest carries listing, search and sorting parameters.
// Page is zero-based.
type ListCategoriesRequest struct {
	Keyword  string
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}

// CategoryResponse is the category representation returned to callers
type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListCategoriesResponse is a paginated category listing
type ListCategoriesResponse struct {
	Items      []CategoryResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
