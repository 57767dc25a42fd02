package pdfextract

import (
	"bytes"
	"fmt"

	"github.com/dslipak/pdf"
)

// Result is the extracted plain text plus the page count reported back to
// the admin dashboard after an upload.
type Result struct {
	Text      string
	PageCount int
}

// TextExtractor pulls plain text out of an uploaded PDF file.
type TextExtractor interface {
	Extract(path string) (*Result, error)
}

type pdfExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &pdfExtractor{}
}

func (e *pdfExtractor) Extract(path string) (*Result, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return nil, fmt.Errorf("read pdf text: %w", err)
	}

	return &Result{
		Text:      buf.String(),
		PageCount: r.NumPage(),
	}, nil
}
