package drawdown

import "errors"

var (
	ErrNotFound          = errors.New("draw request not found")
	ErrAlreadyDecided    = errors.New("draw request already decided")
	ErrInvalidTransition = errors.New("invalid draw request state transition")
	ErrPendingExists     = errors.New("facility already has a pending draw request")
	ErrExceedsCommitment = errors.New("draw amount exceeds undrawn commitment")
)
