package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/go-pdf/fpdf"
)

// WritePDF writes w to path, creating parent directories as needed.
func WritePDF(path string, w Week) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(w.Title(), true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr("Sustainability Challenges: "+w.Title()))
	pdf.Ln(12)

	for _, d := range w.Days {
		pdf.SetFont("Arial", "B", 13)
		header := calendar.LongDate(d.Date)
		if d.Progress.Total > 0 {
			header += fmt.Sprintf("  (%d/%d, %d%%)", d.Progress.Completed, d.Progress.Total, d.Progress.RoundedPercent())
		}
		pdf.Cell(0, 9, tr(header))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		if len(d.Entries) == 0 {
			pdf.Cell(0, 7, "  - No challenges scheduled.")
			pdf.Ln(7)
		}
		for _, e := range d.Entries {
			status := "[ ]"
			if e.Completed {
				status = "[x]"
			}
			pdf.Cell(140, 7, tr(fmt.Sprintf("  %s %s", status, e.Title)))
			pdf.CellFormat(0, 7, pointsLabel(e.Points), "", 0, "R", false, 0, "")
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, tr("Week total: "+summaryLine(w.Summary)))
	pdf.Ln(10)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
