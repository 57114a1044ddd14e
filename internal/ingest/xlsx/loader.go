package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/you-humble/cimco-parts/internal/ingest"
	"github.com/you-humble/cimco-parts/internal/model"
)

// Loader reads part tuples from the first sheet of a workbook, or from the
// named sheet when one is set.
type Loader struct {
	sheet string
}

func NewLoader(sheet string) *Loader {
	return &Loader{sheet: sheet}
}

func (l *Loader) LoadFile(filename string) ([]model.RawPart, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts workbook %s: %w", filename, err)
	}
	defer f.Close()

	return l.load(f)
}

func (l *Loader) Load(r io.Reader) ([]model.RawPart, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parts workbook: %w", err)
	}
	defer f.Close()

	return l.load(f)
}

func (l *Loader) load(f *excelize.File) ([]model.RawPart, error) {
	sheet := l.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header, err := ingest.NewHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	parts := make([]model.RawPart, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if ingest.Blank(row) {
			continue
		}
		parts = append(parts, header.Part(row))
	}

	return parts, nil
}
