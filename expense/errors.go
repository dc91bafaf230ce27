package expense

import "errors"

var (
	// ErrNotFound means no record with the given id exists at all.
	ErrNotFound = errors.New("expense not found")
	// ErrUnauthorized means the record exists but belongs to another user.
	ErrUnauthorized = errors.New("not authorized")
	// ErrUnknownCategory means the label is outside the closed category set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidRange means the month or year filter could not form a window.
	ErrInvalidRange = errors.New("invalid month/year range")
	// ErrStoreUnavailable wraps store failures; callers decide on retry.
	ErrStoreUnavailable = errors.New("expense store unavailable")
)
