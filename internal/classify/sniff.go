package classify

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

var pdfMagic = []byte("%PDF")

// Sniff applies structural heuristics to guess the content format without
// consulting the model. Byte content that is neither a PDF nor valid UTF-8
// is Unknown.
func Sniff(data []byte, isText bool) Format {
	if !isText {
		if bytes.HasPrefix(data, pdfMagic) {
			return FormatPDF
		}
		if !utf8.Valid(data) {
			return FormatUnknown
		}
	}

	content := string(data)

	if strings.Contains(content, "From:") &&
		strings.Contains(content, "Subject:") &&
		strings.Contains(content, "@") {
		return FormatEmail
	}

	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		if json.Valid([]byte(trimmed)) {
			return FormatJSON
		}
	}

	head := content
	if len(head) > 100 {
		head = head[:100]
	}
	if strings.Contains(head, "PDF") {
		return FormatPDF
	}

	return FormatUnknown
}
