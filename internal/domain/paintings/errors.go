package paintings

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("painting not found")
	ErrConflict = errors.New("painting was modified concurrently")
)

// ValidationError reports a missing or invalid field. It is returned before
// any remote call is attempted and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
