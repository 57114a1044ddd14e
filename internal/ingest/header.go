// Package ingest maps spreadsheet-like exports onto part tuples.
package ingest

import (
	"fmt"
	"strings"

	"github.com/you-humble/cimco-parts/internal/model"
)

var requiredColumns = []string{"name", "category"}

// Header resolves column names to positions. Column order is free and unknown
// columns are ignored.
type Header struct {
	cols map[string]int
}

func NewHeader(row []string) (Header, error) {
	cols := make(map[string]int, len(row))
	for i, h := range row {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		name = strings.ReplaceAll(name, " ", "_")
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return Header{}, fmt.Errorf("header is missing %q, got %v", c, row)
		}
	}

	return Header{cols: cols}, nil
}

func (h Header) get(record []string, name string) string {
	i, ok := h.cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// Part maps one data row. Short rows yield empty trailing fields.
func (h Header) Part(record []string) model.RawPart {
	return model.RawPart{
		Name:         h.get(record, "name"),
		Description:  h.get(record, "description"),
		Category:     h.get(record, "category"),
		PartType:     h.get(record, "part_type"),
		Quantity:     h.get(record, "quantity"),
		Manufacturer: h.get(record, "manufacturer"),
		PartNumber:   h.get(record, "part_number"),
		Location:     h.get(record, "location"),
		UnitCost:     h.get(record, "unit_cost"),
		Supplier:     h.get(record, "supplier"),
	}
}

// Blank reports whether a row has no content at all.
func Blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
