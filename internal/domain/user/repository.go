package user

import "context"

// Repository defines the interface for user persistence operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete permanently removes a user and their videos
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a user by ID regardless of status.
	// Returns (nil, nil) when no user exists.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by exact username.
	// Returns (nil, nil) when no user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByEmail retrieves a user by exact email.
	// Returns (nil, nil) when no user exists.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ListActive retrieves all active users
	ListActive(ctx context.Context) ([]*User, error)

	// ListByRole retrieves all active users with the given role
	ListByRole(ctx context.Context, role Role) ([]*User, error)

	// List retrieves active users matching the filter, with the total count
	// of matching rows before pagination
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ExistsByUsername checks case-insensitively whether a user with the
	// given username exists, excluding the record with excludeID (0
	// excludes nothing)
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)

	// ExistsByEmail checks case-insensitively whether a user with the given
	// email exists, excluding the record with excludeID (0 excludes nothing)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)

	// CountActive counts active users
	CountActive(ctx context.Context) (int64, error)

	// CountByRole counts active users with the given role
	CountByRole(ctx context.Context, role Role) (int64, error)
}

// ListFilter defines the filter options for listing users.
// Page is zero-based. Keyword matches username, email and full name
// case-insensitively as a substring.
type ListFilter struct {
	Keyword  string
	Role     *Role
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}
