package normalize

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is matched by every error returned from this package.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError identifies the row and field that failed normalization.
// Index is -1 when the record was not normalized as part of a batch.
type MalformedRecordError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("malformed record at row %d: field %q %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed record: field %q %s", e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}
