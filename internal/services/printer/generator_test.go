package printer

import (
	"bytes"
	"testing"

	"github.com/debagworks/debagmetrics/internal/models"
	"github.com/debagworks/debagmetrics/internal/report"
)

func strPtr(s string) *string { return &s }

func TestGenerateBadgesPDF(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: strPtr("Alex Carter"), EmployeeCode: strPtr("DB001")},
		{ID: 2, EmployeeCode: strPtr("DB002")},
		{ID: 3}, // no name, no code: QR falls back to the numeric id
	}

	pdfBytes, err := GenerateBadgesPDF(people, BadgeConfig{})
	if err != nil {
		t.Fatalf("Failed to generate badge sheet: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Error("Output is not a PDF document")
	}
}

func TestGenerateReportPDF(t *testing.T) {
	rep := report.Build(report.Range{Start: "2026-08-01", End: "2026-08-31"}, []models.Observation{
		{
			PersonID:         1,
			Role:             models.RoleDumper,
			AvgSecondsPerBag: 4.7,
			Person:           models.Person{ID: 1, Name: strPtr("Alex Carter")},
		},
	})

	pdfBytes, err := GenerateReportPDF(rep)
	if err != nil {
		t.Fatalf("Failed to generate report PDF: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Error("Output is not a PDF document")
	}
}

func TestBadgeContentFallback(t *testing.T) {
	withCode := models.Person{ID: 5, EmployeeCode: strPtr("DB005")}
	if got := badgeContent(&withCode); got != "DB005" {
		t.Errorf("badgeContent = %q, want DB005", got)
	}

	bare := models.Person{ID: 9}
	if got := badgeContent(&bare); got != "ID:9" {
		t.Errorf("badgeContent = %q, want ID:9", got)
	}
}
