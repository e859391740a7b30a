package video

import "context"

// Ranking selects a fixed descending ordering for video listings
type Ranking string

const (
	RankingMostViewed Ranking = "most_viewed"
	RankingMostLiked  Ranking = "most_liked"
	RankingRecent     Ranking = "recent"
)

// IsValid checks if the ranking is one of the known variants
func (r Ranking) IsValid() bool {
	return r == RankingMostViewed || r == RankingMostLiked || r == RankingRecent
}

// Repository defines the interface for video persistence operations
type Repository interface {
	// Create creates a new video
	Create(ctx context.Context, video *Video) error

	// Update updates an existing video
	Update(ctx context.Context, video *Video) error

	// Delete permanently removes a video
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a video by ID regardless of status.
	// Returns (nil, nil) when no video exists.
	GetByID(ctx context.Context, id uint) (*Video, error)

	// ListActive retrieves all active videos
	ListActive(ctx context.Context) ([]*Video, error)

	// ListByCategory retrieves all active videos in a category
	ListByCategory(ctx context.Context, categoryID uint) ([]*Video, error)

	// ListByUser retrieves all active videos owned by a user
	ListByUser(ctx context.Context, userID uint) ([]*Video, error)

	// ListByCategoryAndUser retrieves all active videos in a category owned
	// by a user
	ListByCategoryAndUser(ctx context.Context, categoryID, userID uint) ([]*Video, error)

	// List retrieves active videos matching the filter, with the total
	// count of matching rows before pagination
	List(ctx context.Context, filter ListFilter) ([]*Video, int64, error)

	// IncrementViews atomically adds 1 to the view counter.
	// Returns ErrVideoNotFound when no video exists.
	IncrementViews(ctx context.Context, id uint) error

	// IncrementLikes atomically adds 1 to the like counter.
	// Returns ErrVideoNotFound when no video exists.
	IncrementLikes(ctx context.Context, id uint) error

	// CountActive counts active videos
	CountActive(ctx context.Context) (int64, error)

	// CountByCategory counts active videos in a category
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)

	// CountByUser counts active videos owned by a user
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// ListFilter defines the filter options for listing videos.
// Page is zero-based. Keyword matches title and description
// case-insensitively as a substring. Ranking, when set, overrides
// SortBy/SortDir with a fixed descending order.
type ListFilter struct {
	Keyword    string
	CategoryID *uint
	UserID     *uint
	Ranking    Ranking
	Page       int
	PageSize   int
	SortBy     string
	SortDir    string
}
