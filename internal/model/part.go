package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is one stored inventory row: an installed component or a warehouse spare.
type Part struct {
	ID           int64
	Name         string
	Description  string // may carry one [Risk:N] tag
	Category     string // machine or system grouping, e.g. "Conveyor 12"
	PartType     string
	Manufacturer string
	PartNumber   string
	Quantity     int64
	MinQuantity  int64
	LeadTimeDays int64
	WearRating   *int
	RiskScore    *int
	Location     string
	UnitCost     decimal.NullDecimal
	Supplier     string
	StockKey     string // only set on synthetic spare rows
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// RawPart is an ingestion tuple before it becomes a stored Part.
type RawPart struct {
	Name         string
	Description  string
	Category     string
	PartType     string
	Quantity     string
	Manufacturer string
	PartNumber   string
	Location     string
	UnitCost     string
	Supplier     string
}

// NormalizedPart is the per-run canonical view of a Part used by the engine.
type NormalizedPart struct {
	Part        *Part
	Key         string
	Name        string
	Description string
	CategoryKey string
	Tagged      bool
}

type SkippedRecord struct {
	PartID int64
	Name   string
	Reason string
}
