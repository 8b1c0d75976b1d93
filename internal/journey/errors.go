package journey

import "fmt"

// StorageError marks a persistence failure. The day or stage it interrupted
// is aborted before any state for that unit is considered committed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// InvariantViolation reports event state that should be unreachable, such as
// both events active at once. It indicates a caller bug and is raised rather
// than silently corrected.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Detail
}
