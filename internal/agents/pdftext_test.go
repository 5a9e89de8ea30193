package agents

import "testing"

func TestScanContentText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "single literal",
			content:  "BT /F1 12 Tf (Hello World) Tj ET",
			expected: "Hello World",
		},
		{
			name:     "multiple literals joined with spaces",
			content:  "(Invoice) Tj (INV-001) Tj (Total: $1250) Tj",
			expected: "Invoice INV-001 Total: $1250",
		},
		{
			name:     "escape sequences resolved",
			content:  `(line one\nline two\t\(quoted\)) Tj`,
			expected: "line one\nline two\t(quoted)",
		},
		{
			name:     "escaped backslash",
			content:  `(C:\\temp) Tj`,
			expected: `C:\temp`,
		},
		{
			name:     "balanced nesting preserved",
			content:  "(outer (inner) tail) Tj",
			expected: "outer (inner) tail",
		},
		{
			name:     "empty literal skipped",
			content:  "() Tj (kept) Tj",
			expected: "kept",
		},
		{
			name:     "no literals",
			content:  "BT /F1 12 Tf ET",
			expected: "",
		},
		{
			name:     "empty stream",
			content:  "",
			expected: "",
		},
		{
			name:     "unterminated literal recovered to end",
			content:  "(dangling",
			expected: "dangling",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scanContentText([]byte(tc.content)); got != tc.expected {
				t.Errorf("scanContentText(%q) = %q, want %q", tc.content, got, tc.expected)
			}
		})
	}
}
