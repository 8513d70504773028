// Package report exports the cycles of the current session as a PDF.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/go-pdf/fpdf"
)

var ErrNoCycles = errors.New("no cycles to report")

// Error wraps a failure while producing a report file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("report %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("report %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FileName is the report name for a session exported at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("pomo_%s.pdf", now.Format("2006-01-02_150405"))
}

// WritePDF renders cycles into dir and returns the absolute file path.
func WritePDF(cycles []models.Cycle, dir string, now time.Time) (string, error) {
	if len(cycles) == 0 {
		return "", &Error{Op: "build", Err: ErrNoCycles}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &Error{Op: "mkdir", Path: dir, Err: err}
	}

	pdf := render(cycles, now)
	path := filepath.Join(dir, FileName(now))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", &Error{Op: "write", Path: path, Err: err}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// render lays out the report. Task names go through the cp1252
// translator of the core fonts; runes outside it print as '.'.
func render(cycles []models.Cycle, now time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Session Report: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	for _, h := range []struct {
		w    float64
		text string
	}{{70, "Task"}, {20, "Minutes"}, {30, "Started"}, {30, "Ended"}, {30, "Outcome"}} {
		pdf.CellFormat(h.w, 8, h.text, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 11)
	var focused time.Duration
	completed := 0
	for _, c := range cycles {
		ended := "-"
		if c.InterruptDate != nil {
			ended = c.InterruptDate.Format("15:04:05")
			focused += c.InterruptDate.Sub(c.StartDate)
		} else {
			focused += now.Sub(c.StartDate)
		}
		if c.Completed {
			completed++
		}
		pdf.CellFormat(70, 7, tr(truncate(c.Task, 38)), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", c.MinutesAmount), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, c.StartDate.Format("15:04:05"), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, ended, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, Outcome(c), "", 0, "L", false, 0, "")
		pdf.Ln(7)
	}

	// Summary
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Cycles: %d   Completed: %d   Time focused: %s",
		len(cycles), completed, focused.Round(time.Second)))
	pdf.Ln(8)
	return pdf
}

// Outcome labels how a cycle ended.
func Outcome(c models.Cycle) string {
	switch {
	case c.InterruptDate == nil:
		return "running"
	case c.Completed:
		return "completed"
	default:
		return "stopped"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
