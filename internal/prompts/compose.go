package prompts

import (
	"fmt"
	"strings"
)

// Compose builds the full prompt for an extraction stage by combining the
// stage instructions, the output specification, the few-shot examples, and
// the content under analysis.
func Compose(stage Stage, content string) (string, error) {
	instructions, err := Instructions(stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := Spec(stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	shots, err := Examples(stage)
	if err != nil {
		return "", fmt.Errorf("load examples for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nHere are some examples:\n\n")
	sb.WriteString(shots)
	sb.WriteString("\n\nNow process the following content:\n\n")
	sb.WriteString(content)

	return sb.String(), nil
}
