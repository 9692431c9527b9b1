package token

import "errors"

var (
	// ErrTokenNotFound is returned when no access token exists under the requested name.
	ErrTokenNotFound = errors.New("access token not found")
	// ErrTokenNameEmpty is returned when a token operation is attempted with an empty name.
	ErrTokenNameEmpty = errors.New("access token name cannot be empty")
	// ErrTokenAlreadyExists is returned when creating an access token whose name is taken.
	ErrTokenAlreadyExists = errors.New("access token already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
