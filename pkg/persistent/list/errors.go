package list

import "errors"

// ErrEmptyList is wrapped by errors from operations that need a non-empty
// list but got Empty.
var ErrEmptyList = errors.New("empty list")

// AccessError is returned or panicked when an operation that needs a non-empty
// list is applied to Empty.
type AccessError struct {
	Op string
}

func (e *AccessError) Error() string {
	return "list: " + e.Op + " of " + ErrEmptyList.Error()
}

// Unwrap returns ErrEmptyList.
func (e *AccessError) Unwrap() error { return ErrEmptyList }
