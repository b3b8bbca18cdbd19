package plan

import (
	"errors"
	"fmt"
)

var errTextRequired = errors.New("task text is required")

// CapacityError indicates a day already holds the maximum number of
// tasks. Recoverable: callers should pre-check CanAdd instead of
// surfacing this raw.
type CapacityError struct {
	Limit int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("day already has %d tasks", e.Limit)
}

// NotFoundError indicates a stale reference; the caller should refresh
// its view.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
