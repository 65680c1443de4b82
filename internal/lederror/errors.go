package lederror

import "fmt"

// ValidationError represents a rejected field value.
// Store operations never surface this to callers directly (the API contract
// is boolean), but it is logged and used by the persistence layer.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s='%s': %s", e.Field, e.Value, e.Reason)
}

// NotFoundError represents a lookup miss on update/delete/get.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// PersistenceError represents an I/O failure while loading or saving a
// snapshot file. A save failure after a successful in-memory mutation leaves
// memory and disk inconsistent until the next successful save; the stores log
// this instead of failing the operation.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
