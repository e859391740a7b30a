package video

import "errors"

var (
	// ErrVideoNotFound indicates the video was not found
	ErrVideoNotFound = errors.New("video not found")

	// ErrCategoryNotActive indicates the referenced category is missing or
	// inactive
	ErrCategoryNotActive = errors.New("referenced category does not exist or is not active")

	// ErrUserNotActive indicates the referenced user is missing or inactive
	ErrUserNotActive = errors.New("referenced user does not exist or is not active")
)
