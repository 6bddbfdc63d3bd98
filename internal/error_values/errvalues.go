package errorvalues

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrDuplicateEmail     = errors.New("user with such email already exists")
	ErrUserNotFound       = errors.New("user doesn't exists")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrInvalidUser        = errors.New("user must have email and either password or google id")
	ErrValidation         = errors.New("validation error")
)

// Aggregate errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskExists         = errors.New("task with such name already exists")
	ErrWorkEntryNotFound  = errors.New("work entry not found for this date")
	ErrWorkDetailNotFound = errors.New("work detail not found in work entry")
	ErrWorkDetailExists   = errors.New("work detail with such text already exists for this date")
	ErrInvalidDate        = errors.New("invalid date")
)

// Storage errors
var (
	ErrStorage         = errors.New("storage error")
	ErrVersionConflict = errors.New("user document was modified concurrently")
)
