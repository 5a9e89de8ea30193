// Package prompts holds the instruction text, output specifications, and
// few-shot examples for each model extraction stage.
package prompts

import "slices"

// Stage identifies a model extraction stage.
type Stage string

// Valid extraction stages.
const (
	StageClassify Stage = "classify"
	StageEmail    Stage = "email"
	StageInvoice  Stage = "invoice"
	StagePolicy   Stage = "policy"
)

var stages = []Stage{
	StageClassify,
	StageEmail,
	StageInvoice,
	StagePolicy,
}

// Stages returns the list of valid extraction stages.
func Stages() []Stage {
	return stages
}

// ParseStage validates a string as a known extraction stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
