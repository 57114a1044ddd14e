package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/you-humble/cimco-parts/internal/ingest"
	"github.com/you-humble/cimco-parts/internal/model"
)

// Loader reads part tuples from a CSV export with a header row.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) LoadFile(filename string) ([]model.RawPart, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}
	defer file.Close()

	return l.Load(file)
}

func (l *Loader) Load(r io.Reader) ([]model.RawPart, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parts CSV is empty")
		}
		return nil, fmt.Errorf("failed to read parts CSV header: %w", err)
	}

	header, err := ingest.NewHeader(row)
	if err != nil {
		return nil, fmt.Errorf("parts CSV: %w", err)
	}

	var parts []model.RawPart
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", line, err)
		}
		if ingest.Blank(record) {
			continue
		}

		parts = append(parts, header.Part(record))
	}

	return parts, nil
}
