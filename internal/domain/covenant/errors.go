package covenant

import "errors"

var (
	ErrNotFound        = errors.New("covenant not found")
	ErrInvalidOperator = errors.New("invalid threshold operator")
)
