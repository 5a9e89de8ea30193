package classify

import "errors"

// Classification result validation errors.
var (
	ErrInvalidFormat     = errors.New("invalid content format")
	ErrInvalidIntent     = errors.New("invalid business intent")
	ErrInvalidConfidence = errors.New("confidence out of range")
)
