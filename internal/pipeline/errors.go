package pipeline

import "errors"

var (
	// ErrPayloadTooLarge means the declared upload size exceeds the limit
	ErrPayloadTooLarge = errors.New("uploaded file exceeds the maximum allowed size")
	// ErrStorage covers local temporary-file I/O failures
	ErrStorage = errors.New("temporary storage failure")
	// ErrInternal is the catch-all for unanticipated pipeline faults
	ErrInternal = errors.New("pipeline failure")
)
