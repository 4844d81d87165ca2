package dashboard

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailure is matched by every error from Service.Load.
	ErrLoadFailure = errors.New("failed to load inventory data")
	// ErrSnapshotNotReady is returned before the first successful load.
	ErrSnapshotNotReady = errors.New("inventory data has not been loaded")
)

// LoadError wraps the cause of a failed load. It matches both ErrLoadFailure
// and the underlying cause, e.g. normalize.ErrMalformedRecord.
type LoadError struct {
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrLoadFailure, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoadFailure, e.Err}
}
