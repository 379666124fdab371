package domain

import "errors"

var (
	// ErrNotFound is returned for references to nonexistent entity ids.
	// It indicates a caller bug and should be surfaced, not retried.
	ErrNotFound = errors.New("not found")

	// ErrConstraint is returned for unique-key or foreign-key violations.
	// Callers recover by retrying the operation as a get-or-create.
	ErrConstraint = errors.New("constraint violation")

	// ErrInvalidCategory rejects unknown tag categories before any write.
	ErrInvalidCategory = errors.New("invalid tag category")

	// ErrInvalidPostType rejects unknown post types before any write.
	ErrInvalidPostType = errors.New("invalid post type")
)
