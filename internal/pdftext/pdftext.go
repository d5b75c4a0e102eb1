// Package pdftext turns uploaded documents into raw text for the question
// extractor. PDFs go through ledongthuc/pdf (pure Go, no CGO).
package pdftext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

var (
	ErrEmptyDocument = errors.New("pdftext: empty document")
	ErrNotText       = errors.New("pdftext: document is not valid UTF-8 text")
)

// Extractor yields the text of a whole document.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// PDF extracts page text and separates pages with a page-break marker line.
type PDF struct{}

func (PDF) Extract(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdftext: open pdf: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // image-only or unreadable page
		}
		out.WriteString(text)
		out.WriteString("\n")
		out.WriteString(PageBreak(i - 1))
		out.WriteString("\n")
	}
	return out.String(), nil
}

// Plain passes UTF-8 text documents through.
type Plain struct{}

func (Plain) Extract(_ context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

// PageBreak is the marker line written after page n (0-based).
func PageBreak(n int) string {
	return fmt.Sprintf("%s (%d) Break----------------", mcq.PageBreakPrefix, n)
}

// ForFile picks an extractor from the upload's name and content type.
// Anything not recognisably plain text is treated as PDF.
func ForFile(filename, contentType string) Extractor {
	ct := strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(ct, "text/plain"):
		return Plain{}
	case strings.EqualFold(filepath.Ext(filename), ".txt"):
		return Plain{}
	default:
		return PDF{}
	}
}
