package postgres

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/cimco-parts/internal/model"
)

func recordToModel(r partRecord) (*model.Part, error) {
	p := &model.Part{
		ID:           r.ID,
		Name:         r.Name,
		Description:  lo.FromPtr(r.Description),
		Category:     r.Category,
		PartType:     lo.FromPtr(r.PartType),
		Manufacturer: lo.FromPtr(r.Manufacturer),
		PartNumber:   lo.FromPtr(r.PartNumber),
		Quantity:     r.Quantity,
		MinQuantity:  r.MinQuantity,
		LeadTimeDays: r.LeadTimeDays,
		WearRating:   r.WearRating,
		RiskScore:    r.RiskScore,
		Location:     lo.FromPtr(r.Location),
		Supplier:     lo.FromPtr(r.Supplier),
		StockKey:     lo.FromPtr(r.StockKey),
		CreatedAt:    lo.ToPtr(r.CreatedAt),
		UpdatedAt:    lo.ToPtr(r.UpdatedAt),
	}

	if r.UnitCost != nil {
		d, err := decimal.NewFromString(*r.UnitCost)
		if err != nil {
			return nil, fmt.Errorf("part %d unit_cost %q: %w", r.ID, *r.UnitCost, err)
		}
		p.UnitCost = decimal.NewNullDecimal(d)
	}

	return p, nil
}

// insertValues follows insertColumns.
func insertValues(p *model.Part) []any {
	var cost *string
	if p.UnitCost.Valid {
		cost = lo.ToPtr(p.UnitCost.Decimal.String())
	}

	return []any{
		p.Name,
		lo.EmptyableToPtr(p.Description),
		p.Category,
		lo.EmptyableToPtr(p.PartType),
		lo.EmptyableToPtr(p.Manufacturer),
		lo.EmptyableToPtr(p.PartNumber),
		p.Quantity,
		p.MinQuantity,
		p.LeadTimeDays,
		p.WearRating,
		lo.EmptyableToPtr(p.Location),
		cost,
		lo.EmptyableToPtr(p.Supplier),
		lo.EmptyableToPtr(p.StockKey),
	}
}

var insertColumns = []string{
	"name", "description", "category", "part_type", "manufacturer", "part_number",
	"quantity", "min_quantity", "lead_time_days", "wear_rating",
	"location", "unit_cost", "supplier", "stock_key",
}
