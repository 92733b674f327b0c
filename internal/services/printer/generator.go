package printer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/debagworks/debagmetrics/internal/models"
)

// BadgeConfig holds layout configuration for badge sheet generation
type BadgeConfig struct {
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"marginTop"`
	MarginLeft float64 `json:"marginLeft"`
	GapX       float64 `json:"gapX"`
	GapY       float64 `json:"gapY"`
}

// ApplyDefaults fills zero-valued layout fields with the standard 3x7
// label sheet geometry.
func (cfg *BadgeConfig) ApplyDefaults() {
	if cfg.Cols == 0 {
		cfg.Cols = 3
	}
	if cfg.Rows == 0 {
		cfg.Rows = 7
	}
	if cfg.MarginTop == 0 {
		cfg.MarginTop = 10
	}
	if cfg.MarginLeft == 0 {
		cfg.MarginLeft = 7
	}
}

// badgeContent is what the QR encodes: the employee code when present, so
// the capture form can select a person by scanning their badge at the belt.
func badgeContent(p *models.Person) string {
	if p.EmployeeCode != nil && *p.EmployeeCode != "" {
		return *p.EmployeeCode
	}
	return fmt.Sprintf("ID:%d", p.ID)
}

// GenerateBadgesPDF creates an A4 sheet of QR badges for the given people.
func GenerateBadgesPDF(people []models.Person, cfg BadgeConfig) ([]byte, error) {
	cfg.ApplyDefaults()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	// A4 dimensions
	pageWidth, pageHeight := 210.0, 297.0

	totalGapX := float64(cfg.Cols-1) * cfg.GapX
	totalGapY := float64(cfg.Rows-1) * cfg.GapY

	availW := pageWidth - (cfg.MarginLeft * 2)
	availH := pageHeight - (cfg.MarginTop * 2)

	labelW := (availW - totalGapX) / float64(cfg.Cols)
	labelH := (availH - totalGapY) / float64(cfg.Rows)

	labelsPerPage := cfg.Cols * cfg.Rows

	for i := range people {
		person := &people[i]

		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		indexOnPage := i % labelsPerPage
		col := indexOnPage % cfg.Cols
		row := indexOnPage / cfg.Cols

		x := cfg.MarginLeft + float64(col)*(labelW+cfg.GapX)
		y := cfg.MarginTop + float64(row)*(labelH+cfg.GapY)

		qrPng, err := qrcode.Encode(badgeContent(person), qrcode.Medium, 256)
		if err != nil {
			return nil, err
		}

		imgName := fmt.Sprintf("qr_%d", i)
		imgOptions := gofpdf.ImageOptions{
			ImageType: "PNG",
			ReadDpi:   true,
		}
		_ = pdf.RegisterImageOptionsReader(imgName, imgOptions, bytes.NewReader(qrPng))

		// QR centered, taking up 70% of label height
		qrSize := labelH * 0.7
		if qrSize > labelW {
			qrSize = labelW * 0.9
		}
		qrX := x + (labelW-qrSize)/2
		qrY := y + (labelH-qrSize)/2 - 2

		pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, imgOptions, 0, "")

		// Display name below the QR, employee code top right
		label := person.DisplayName()
		if label == "" {
			label = fmt.Sprintf("ID %d", person.ID)
		}
		pdf.SetXY(x, y+labelH-6)
		pdf.SetFontSize(8)
		pdf.CellFormat(labelW, 5, label, "", 0, "C", false, 0, "")

		if person.EmployeeCode != nil {
			pdf.SetXY(x, y+1)
			pdf.SetFontSize(6)
			pdf.CellFormat(labelW, 3, *person.EmployeeCode, "", 0, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
