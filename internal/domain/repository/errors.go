package repository

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrLimitReached = errors.New("limit reached")
	// ErrValueTooLong is a write that does not fit a column's length limit.
	ErrValueTooLong = errors.New("value too long")
)
