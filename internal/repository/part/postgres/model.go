package postgres

import "time"

// partRecord mirrors one parts row with its nullable columns.
type partRecord struct {
	ID           int64
	Name         string
	Description  *string
	Category     string
	PartType     *string
	Manufacturer *string
	PartNumber   *string
	Quantity     int64
	MinQuantity  int64
	LeadTimeDays int64
	WearRating   *int
	RiskScore    *int
	Location     *string
	UnitCost     *string
	Supplier     *string
	StockKey     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var partColumns = []string{
	"id", "name", "description", "category", "part_type", "manufacturer", "part_number",
	"quantity", "min_quantity", "lead_time_days", "wear_rating", "risk_score",
	"location", "unit_cost::text", "supplier", "stock_key", "created_at", "updated_at",
}

func (r *partRecord) scanTargets() []any {
	return []any{
		&r.ID, &r.Name, &r.Description, &r.Category, &r.PartType, &r.Manufacturer, &r.PartNumber,
		&r.Quantity, &r.MinQuantity, &r.LeadTimeDays, &r.WearRating, &r.RiskScore,
		&r.Location, &r.UnitCost, &r.Supplier, &r.StockKey, &r.CreatedAt, &r.UpdatedAt,
	}
}
