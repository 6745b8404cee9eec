package matchfile

import "errors"

const filePermission = 0o644

// Sentinel kinds for match-file errors.
var (
	ErrDecode       = errors.New("decode match file")
	ErrMissingField = errors.New("missing required field")
)
