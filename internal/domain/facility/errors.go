package facility

import "errors"

var (
	ErrNotFound = errors.New("facility not found")
	ErrClosed   = errors.New("facility is closed")
)
