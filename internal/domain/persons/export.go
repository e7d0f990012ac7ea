package persons

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const (
	ExportDateLayout = "2006-01-02"
	ExcelSheet       = "PersonsSheet"
)

var exportHeader = []string{
	"Name", "Email", "DateOfBirth", "Age", "Gender", "Country", "Address", "ReceiveNewsLetters",
}

func exportRow(p PersonResponse) []string {
	dob := ""
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(ExportDateLayout)
	}
	age := ""
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	return []string{
		p.Name,
		p.Email,
		dob,
		age,
		p.Gender,
		p.Country,
		p.Address,
		strconv.FormatBool(p.ReceiveNewsLetters),
	}
}

func (s *Service) GetPersonsCSV(ctx context.Context, w io.Writer) error {
	items, err := s.GetAllPersons(ctx)
	if err != nil {
		return err
	}
	return WriteCSV(w, items)
}

func (s *Service) GetPersonsExcel(ctx context.Context, w io.Writer) error {
	items, err := s.GetAllPersons(ctx)
	if err != nil {
		return err
	}
	return WriteExcel(w, items)
}

func (s *Service) GetPersonsPDF(ctx context.Context, w io.Writer) error {
	items, err := s.GetAllPersons(ctx)
	if err != nil {
		return err
	}
	return WritePDF(w, items)
}

func WriteCSV(w io.Writer, items []PersonResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, p := range items {
		if err := cw.Write(exportRow(p)); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteExcel(w io.Writer, items []PersonResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExcelSheet); err != nil {
		return fmt.Errorf("excel sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9D9D9"}},
	})
	if err != nil {
		return fmt.Errorf("excel style: %w", err)
	}

	widths := make([]int, len(exportHeader))
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, exportHeader)
	for _, p := range items {
		rows = append(rows, exportRow(p))
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ExcelSheet, cell, v); err != nil {
				return fmt.Errorf("excel cell %s: %w", cell, err)
			}
			if n := utf8.RuneCountInString(v); n > widths[c] {
				widths[c] = n
			}
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ExcelSheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("excel header style: %w", err)
	}

	// excelize no tiene auto-fit: ancho = contenido más largo + margen
	for c, width := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(ExcelSheet, col, col, float64(width)+2); err != nil {
			return fmt.Errorf("excel width %s: %w", col, err)
		}
	}

	return f.Write(w)
}

// WritePDF genera una tabla apaisada (A4, márgenes de 20mm).
func WritePDF(w io.Writer, items []PersonResponse) error {
	const margin = 20.0

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle("Persons", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	colWidths := []float64{32, 48, 24, 12, 18, 28, 64, 31}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(217, 217, 217)
		for i, h := range exportHeader {
			pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, "Persons", "", 1, "L", false, 0, "")
		writeHeader()
	})
	pdf.AddPage()

	for _, p := range items {
		for i, v := range exportRow(p) {
			pdf.CellFormat(colWidths[i], 6, truncate(tr(v), colWidths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if pdf.Err() {
		return fmt.Errorf("pdf: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// truncate recorta a lo que entra en la celda (aprox. 1.7mm por carácter en 8pt).
func truncate(s string, width float64) string {
	limit := int(width / 1.7)
	if len(s) <= limit || limit < 2 {
		return s
	}
	return s[:limit-1] + "~"
}
