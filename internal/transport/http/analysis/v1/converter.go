package http

import (
	"github.com/shopspring/decimal"

	"github.com/you-humble/cimco-parts/internal/model"
)

type partResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	PartType     string           `json:"part_type,omitempty"`
	Manufacturer string           `json:"manufacturer,omitempty"`
	PartNumber   string           `json:"part_number,omitempty"`
	Quantity     int64            `json:"quantity"`
	MinQuantity  int64            `json:"min_quantity"`
	WearRating   *int             `json:"wear_rating,omitempty"`
	RiskScore    *int             `json:"risk_score,omitempty"`
	Location     string           `json:"location,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	StockKey     string           `json:"stock_key,omitempty"`
}

func partToResponse(p *model.Part) partResponse {
	res := partResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		PartType:     p.PartType,
		Manufacturer: p.Manufacturer,
		PartNumber:   p.PartNumber,
		Quantity:     p.Quantity,
		MinQuantity:  p.MinQuantity,
		WearRating:   p.WearRating,
		RiskScore:    p.RiskScore,
		Location:     p.Location,
		StockKey:     p.StockKey,
	}
	if p.UnitCost.Valid {
		c := p.UnitCost.Decimal
		res.UnitCost = &c
	}
	return res
}
