package sqlite

import (
	"time"

	"github.com/shopspring/decimal"
)

// partRow is the gorm model of the offline parts table.
type partRow struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"not null"`
	Description  *string
	Category     string  `gorm:"not null;index:idx_parts_category_stock_key,priority:1"`
	PartType     *string
	Manufacturer *string
	PartNumber   *string
	Quantity     int64 `gorm:"not null;default:0"`
	MinQuantity  int64 `gorm:"not null;default:0"`
	LeadTimeDays int64 `gorm:"not null;default:0"`
	WearRating   *int
	RiskScore    *int
	Location     *string
	UnitCost     decimal.NullDecimal `gorm:"type:text"`
	Supplier     *string
	StockKey     *string `gorm:"index:idx_parts_category_stock_key,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (partRow) TableName() string { return "parts" }
