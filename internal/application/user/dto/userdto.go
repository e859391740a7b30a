// Package dto defines the request and response types of the user
// application layer.
package dto

import "time"

// CreateUserRequest carries the fields for creating a user. Password is
// the plaintext credential; it is hashed before anything is stored.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"max=255"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER"`
}

// UpdateUserRequest carries the fields for updating a user. An empty
// Password leaves the stored credential untouched.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"max=255"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN USER"`
	Active   bool   `json:"active"`
}

// ListUsersRequest carries listing, search and sorting parameters.
// Page is zero-based. Role, when set, narrows the listing to one role.
type ListUsersRequest struct {
	Keyword  string
	Role     string
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}

// UserResponse is the user representation returned to callers. The
// password hash is never exposed.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUsersResponse is a paginated user listing
type ListUsersResponse struct {
	Items      []UserResponse `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
