package submission

import "errors"

var (
	// ErrSubmissionNotFound indicates the submission doesn't exist.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrInvalidStatus indicates a status value outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid submission status")
	// ErrIllegalTransition indicates a status update that violates the workflow.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrIDExhausted indicates id generation kept colliding with stored keys.
	ErrIDExhausted = errors.New("could not allocate a unique submission id")
)
