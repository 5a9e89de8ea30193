package extraction

import "errors"

// Extraction errors.
var (
	ErrMissingAPIKey = errors.New("model API key not configured")
	ErrModelRequest  = errors.New("model request failed")
	ErrEmptyResponse = errors.New("model returned empty response")
)
