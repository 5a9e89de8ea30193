package prompts

import "errors"

// ErrInvalidStage indicates an unrecognized extraction stage.
var ErrInvalidStage = errors.New("invalid extraction stage")
