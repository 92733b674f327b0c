package printer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/debagworks/debagmetrics/internal/report"
)

// table column widths in mm for the per-person section
var personCols = []struct {
	title string
	width float64
}{
	{"Person", 60},
	{"Obs", 20},
	{"Avg s/bag", 30},
	{"Quality %", 30},
	{"Safety %", 30},
}

var roleCols = []struct {
	title string
	width float64
}{
	{"Role", 60},
	{"Obs", 20},
	{"Avg s/bag", 30},
	{"Quality %", 30},
	{"Safety %", 30},
}

func fmtRate(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// GenerateReportPDF renders an aggregated report as a printable A4 summary.
func GenerateReportPDF(rep *report.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "DeBag Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Range: %s to %s", rep.Range.Start, rep.Range.End), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total observations: %d", rep.Totals.Observations), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Per-person table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Per person", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	for _, col := range personCols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, entry := range rep.PerPerson {
		pdf.CellFormat(personCols[0].width, 6, entry.PersonName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(personCols[1].width, 6, strconv.Itoa(entry.Observations), "1", 0, "R", false, 0, "")
		pdf.CellFormat(personCols[2].width, 6, fmtRate(entry.AvgSecondsPerBag), "1", 0, "R", false, 0, "")
		pdf.CellFormat(personCols[3].width, 6, fmtRate(entry.QualityIssueRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(personCols[4].width, 6, fmtRate(entry.SafetyIssueRate), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	if len(rep.PerPerson) == 0 {
		pdf.CellFormat(170, 6, "No observations in range", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Per-role table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "By role", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	for _, col := range roleCols {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, entry := range rep.ByRole {
		pdf.CellFormat(roleCols[0].width, 6, string(entry.Role), "1", 0, "L", false, 0, "")
		pdf.CellFormat(roleCols[1].width, 6, strconv.Itoa(entry.Observations), "1", 0, "R", false, 0, "")
		pdf.CellFormat(roleCols[2].width, 6, fmtRate(entry.AvgSecondsPerBag), "1", 0, "R", false, 0, "")
		pdf.CellFormat(roleCols[3].width, 6, fmtRate(entry.QualityIssueRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(roleCols[4].width, 6, fmtRate(entry.SafetyIssueRate), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
