// Package processing orchestrates intake runs: it assigns the process ID,
// classifies the content, routes to the matching agent, and assembles the
// full decision trail.
package processing

// Source types recorded in the input metadata.
const (
	SourceFile       = "file"
	SourceRawContent = "raw_content"
)

// Input is a single piece of inbound content. Text reports whether the
// content has a usable text representation; file uploads that are not valid
// UTF-8 carry bytes only.
type Input struct {
	Data       []byte
	Text       bool
	SourceType string
	Filename   string
	TypeHint   string
}

// Result is the outcome of a processing run, including the full trace.
type Result struct {
	ProcessID string         `json:"process_id"`
	Status    string         `json:"status"`
	Trace     map[string]any `json:"trace"`
}

// TraceResult pairs a process ID with its recorded trace entries.
type TraceResult struct {
	ProcessID string         `json:"process_id"`
	Trace     map[string]any `json:"trace"`
}
