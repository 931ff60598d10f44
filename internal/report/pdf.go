// Package report renders review text into paginated PDF documents.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sevigo/code-review-reporter/internal/config"
)

const documentTitle = "Code Review Report"

// PDFRenderer writes each line of the review as a wrapped paragraph using a
// single core font. No markdown structure is interpreted.
type PDFRenderer struct {
	cfg config.ReportConfig
}

// NewPDFRenderer creates a renderer with a fixed page layout.
func NewPDFRenderer(cfg config.ReportConfig) *PDFRenderer {
	return &PDFRenderer{cfg: cfg}
}

// Render writes text to w as a PDF document.
func (r *PDFRenderer) Render(text string, w io.Writer) error {
	pdf := fpdf.New("P", "mm", r.cfg.PageSize, "")
	pdf.SetTitle(documentTitle, true)
	pdf.SetCreator("code-review-reporter", true)
	pdf.SetAutoPageBreak(true, r.cfg.Margin)
	pdf.AddPage()
	pdf.SetFont(r.cfg.Font, "", r.cfg.FontSize)

	// Core fonts only cover cp1252; anything outside it is replaced rather
	// than corrupting the content stream.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(text, "\n") {
		pdf.MultiCell(0, r.cfg.LineHeight, tr(line), "", "", false)
		if pdf.Err() {
			break
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}
