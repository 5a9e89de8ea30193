package agents

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// TextExtractor pulls plain text out of PDF bytes. Implementations return
// the empty string when no text can be recovered.
type TextExtractor interface {
	ExtractText(data []byte) string
}

// PDFTextExtractor extracts text from PDF content streams using pdfcpu.
// Extraction is best-effort: it recovers literal strings from page content
// operators and makes no attempt to decode embedded font encodings.
type PDFTextExtractor struct {
	logger *slog.Logger
}

// NewPDFTextExtractor initializes a PDFTextExtractor.
func NewPDFTextExtractor(logger *slog.Logger) *PDFTextExtractor {
	return &PDFTextExtractor{
		logger: logger.With("system", "agents", "component", "pdftext"),
	}
}

// ExtractText reads, validates, and optimizes the document, then scans each
// page's content stream for text. Returns the empty string when the document
// cannot be read or yields no text.
func (e *PDFTextExtractor) ExtractText(data []byte) string {
	ctx, err := api.ReadContext(bytes.NewReader(data), nil)
	if err != nil {
		e.logger.Warn("pdf read failed", "error", err)
		return ""
	}
	if err := api.ValidateContext(ctx); err != nil {
		e.logger.Warn("pdf validation failed", "error", err)
		return ""
	}
	if err := api.OptimizeContext(ctx); err != nil {
		e.logger.Warn("pdf optimization failed", "error", err)
		return ""
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			e.logger.Warn("page content extraction failed",
				"page", pageNr,
				"error", err,
			)
			continue
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		page := scanContentText(content)
		if page != "" {
			sb.WriteString(page)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

// scanContentText recovers literal strings from a page content stream. It
// walks the stream byte by byte, collecting parenthesized literals with
// their escape sequences resolved and balanced nesting honored.
func scanContentText(content []byte) string {
	var sb strings.Builder

	for i := 0; i < len(content); i++ {
		if content[i] != '(' {
			continue
		}

		depth := 1
		var lit strings.Builder
		j := i + 1
		for ; j < len(content) && depth > 0; j++ {
			c := content[j]
			switch c {
			case '\\':
				if j+1 < len(content) {
					j++
					switch content[j] {
					case 'n':
						lit.WriteByte('\n')
					case 'r':
						lit.WriteByte('\r')
					case 't':
						lit.WriteByte('\t')
					case '(', ')', '\\':
						lit.WriteByte(content[j])
					}
				}
			case '(':
				depth++
				lit.WriteByte(c)
			case ')':
				depth--
				if depth > 0 {
					lit.WriteByte(c)
				}
			default:
				lit.WriteByte(c)
			}
		}
		i = j - 1

		if text := lit.String(); text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
	}

	return strings.TrimSpace(strings.ToValidUTF8(sb.String(), ""))
}
