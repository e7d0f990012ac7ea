package countries

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	ImportSheet   = "Countries"
	ExcelFileExt  = ".xlsx"
	firstDataRow  = 2
	nameColumnIdx = 0
)

var ErrUnsupportedFile = errors.New("unsupported file. 'xlsx' file is expected")

// CheckExcelFileName rechaza cualquier extensión que no sea .xlsx antes de leer el archivo.
func CheckExcelFileName(name string) error {
	if !strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ExcelFileExt) {
		return ErrUnsupportedFile
	}
	return nil
}

// UploadFromExcelFile lee la hoja "Countries" (fila 2 en adelante, columna A)
// e inserta cada nombre que todavía no exista. Devuelve cuántos insertó.
// Duplicados (en storage o dentro del mismo archivo) se saltean sin error.
func (s *Service) UploadFromExcelFile(ctx context.Context, r io.Reader) (int, error) {
	if r == nil {
		return 0, ErrNilRequest
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ImportSheet)
	if err != nil {
		return 0, fmt.Errorf("read worksheet %q: %w", ImportSheet, err)
	}

	inserted := 0
	for i := firstDataRow - 1; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		row := rows[i]
		if len(row) <= nameColumnIdx {
			continue
		}
		name := strings.TrimSpace(row[nameColumnIdx])
		if name == "" {
			continue
		}

		_, err := s.repo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return inserted, err
		}

		c := Country{ID: s.newID(), Name: name}
		if err := s.repo.Add(ctx, c); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
