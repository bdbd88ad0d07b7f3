package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	conductor "Voltra/internal/calc/conductor"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string                  `json:"project"`
	Author  string                  `json:"author"`
	Title   string                  `json:"title"`
	Notes   string                  `json:"notes"`
	Request conductor.SizingRequest `json:"request"`
}

type Handler struct{}

// Generate runs the sizing engine and renders the result as a PDF.
// Compliance flags are printed as computed; the report never re-derives
// them.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Conductor Sizing Report"
	}

	res, err := conductor.SizeConductor(input.Request)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	line := func(format string, args ...interface{}) {
		pdf.Cell(0, 6, fmt.Sprintf(format, args...))
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Recommendation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	line("Conductor: %s (%d run(s) per phase)", res.RecommendedSize, res.ParallelRuns)
	line("Voltage drop: %.2f V (%.2f%%)", res.VoltageDrop.DropVolts, res.VoltageDrop.DropPercent)
	line("Derated ampacity: %.2f A (base %.2f A, factor %.2f)",
		res.DeratedAmpacity, res.BaseAmpacity, res.Derating.TotalFactor)
	line("Utilization: %.1f%%", res.UtilizationPercent)
	line("Earth conductor: %s (%s, %s)", res.Earth.Size, res.Earth.RuleApplied, res.Earth.Reference)
	line("Fully compliant: %t", res.Compliance.IsFullyCompliant)
	pdf.Ln(4)

	if len(res.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, warn := range res.Warnings {
			pdf.MultiCell(0, 5, "- "+warn, "", "L", false)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "References")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, ref := range res.StandardReferences {
		pdf.Cell(0, 5, "- "+ref)
		pdf.Ln(5)
	}

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sizing-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
