package agents

import "errors"

// Agent extraction validation errors.
var (
	ErrMissingField   = errors.New("required field missing from extraction")
	ErrInvalidUrgency = errors.New("invalid urgency level")
	ErrInvalidTone    = errors.New("invalid tone")
)
