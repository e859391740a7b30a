package user

import "errors"

var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists indicates a user with the same username already exists
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists indicates a user with the same email already exists
	ErrEmailExists = errors.New("email already exists")
)
