package engine

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptyResult      = errors.New("no data left to analyze under given conditions")
)

// EmptyResultError is returned when the filtered, pivoted matrix holds no
// non-zero value. It matches ErrEmptyResult with errors.Is.
type EmptyResultError struct {
	Reason string
}

func (e *EmptyResultError) Error() string {
	if e.Reason == "" {
		return ErrEmptyResult.Error()
	}
	return ErrEmptyResult.Error() + ": " + e.Reason
}

func (e *EmptyResultError) Is(target error) bool {
	return target == ErrEmptyResult
}
