package category

import "context"

// Repository defines the interface for category persistence operations
type Repository interface {
	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// Update updates an existing category
	Update(ctx context.Context, category *Category) error

	// Delete permanently removes a category and its videos
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a category by ID regardless of status.
	// Returns (nil, nil) when no category exists.
	GetByID(ctx context.Context, id uint) (*Category, error)

	// ListActive retrieves all active categories
	ListActive(ctx context.Context) ([]*Category, error)

	// List retrieves active categories matching the filter, with the total
	// count of matching rows before pagination
	List(ctx context.Context, filter ListFilter) ([]*Category, int64, error)

	// ExistsByName checks case-insensitively whether a category with the
	// given name exists, excluding the record with excludeID (0 excludes
	// nothing)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	// CountActive counts active categories
	CountActive(ctx context.Context) (int64, error)
}

// ListFilter defines the filter options for listing categories.
// Page is zero-based. Keyword matches name and description
// case-insensitively as a substring.
type ListFilter struct {
	Keyword  string
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}
