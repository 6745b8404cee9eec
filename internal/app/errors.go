package service

import "errors"

// ErrValidationFailed is returned by Run under strict validation when any
// enabled check reports a violation.
var ErrValidationFailed = errors.New("match validation failed")
