package sqlite

import (
	"github.com/samber/lo"

	"github.com/you-humble/cimco-parts/internal/model"
)

func rowToModel(r partRow) *model.Part {
	return &model.Part{
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
		UnitCost:     r.UnitCost,
		Supplier:     lo.FromPtr(r.Supplier),
		StockKey:     lo.FromPtr(r.StockKey),
		CreatedAt:    lo.ToPtr(r.CreatedAt),
		UpdatedAt:    lo.ToPtr(r.UpdatedAt),
	}
}

func modelToRow(p *model.Part) partRow {
	return partRow{
		Name:         p.Name,
		Description:  lo.EmptyableToPtr(p.Description),
		Category:     p.Category,
		PartType:     lo.EmptyableToPtr(p.PartType),
		Manufacturer: lo.EmptyableToPtr(p.Manufacturer),
		PartNumber:   lo.EmptyableToPtr(p.PartNumber),
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		LeadTimeDays: p.LeadTimeDays,
		WearRating:   p.WearRating,
		RiskScore:    p.RiskScore,
		Location:     lo.EmptyableToPtr(p.Location),
		UnitCost:     p.UnitCost,
		Supplier:     lo.EmptyableToPtr(p.Supplier),
		StockKey:     lo.EmptyableToPtr(p.StockKey),
	}
}
