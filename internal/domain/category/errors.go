package category

import "errors"

var (
	// ErrCategoryNotFound indicates the category was not found
	ErrCategoryNotFound = errors.New("category not found")

	// ErrNameExists indicates a category with the same name already exists
	ErrNameExists = errors.New("category name already exists")
)
