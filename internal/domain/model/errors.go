package model

import (
	"errors"
	"fmt"
)

// Sentinel error kinds shared across layers. These allow errors.Is from callers.
var (
	// ErrMalformedRecord marks a match that is missing a field or carries an
	// unparseable value. It is fatal for a rating run.
	ErrMalformedRecord = errors.New("malformed match record")
	// ErrSequenceViolation marks non-sequential match numbering.
	ErrSequenceViolation = errors.New("match_no is not sequential")
	// ErrInvalidWinner marks a winner that names neither player nor a draw.
	ErrInvalidWinner = errors.New("invalid winner")
	// ErrDateOrder marks a match dated before its predecessor.
	ErrDateOrder = errors.New("date not sequential")
)

// RecordError identifies the match record an error belongs to.
type RecordError struct {
	Index          int    // position in the input list, 0-based
	SequenceNumber int    // match_no as given in the input
	Field          string // offending field, empty when the record as a whole is at fault
	Kind           error  // one of the sentinel kinds above
	Err            error  // underlying cause, may be nil
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("%v: match_no %d (index %d)", e.Kind, e.SequenceNumber, e.Index)
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *RecordError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Malformed builds a RecordError of kind ErrMalformedRecord.
func Malformed(index, seq int, field string, cause error) *RecordError {
	return &RecordError{Index: index, SequenceNumber: seq, Field: field, Kind: ErrMalformedRecord, Err: cause}
}
