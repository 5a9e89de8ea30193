package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when model output cannot be parsed as JSON,
// either directly or out of a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var fencedJSON = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse unmarshals model output into T. Models occasionally wrap their JSON
// in a markdown fence despite instructions; if direct unmarshaling fails the
// fenced block is extracted and retried before giving up with ErrParseFailed.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	if matches := fencedJSON.FindStringSubmatch(content); len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, content)
}

// Truncate shortens s to at most limit characters, appending an ellipsis
// marker when content was dropped. Used for trace previews of raw input.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
