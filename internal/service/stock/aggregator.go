package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/you-humble/cimco-parts/internal/classifier"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/normalizer"
	"github.com/you-humble/cimco-parts/platform/logger"
)

const keySeparator = " | "

type Config struct {
	SpareCategory string
	SpareLocation string
}

func DefaultConfig() Config {
	return Config{
		SpareCategory: "Warehouse Spares",
		SpareLocation: "Shelf A",
	}
}

type aggregator struct {
	classes classifier.StockClassifier
	policy  *Policy
	cfg     Config
}

func NewAggregator(classes classifier.StockClassifier, policy *Policy, cfg Config) *aggregator {
	return &aggregator{classes: classes, policy: policy, cfg: cfg}
}

type spareIndex struct {
	byStockKey map[string][]*model.Part
	legacy     map[string][]*model.Part // spare rows without a stock key, by upper name
}

// Plan groups installed parts by stock key (phase A) and then derives the
// min-quantity updates and the missing spare rows (phase B). Rows already in
// the spare category never count as installed.
func (a *aggregator) Plan(ctx context.Context, parts []model.NormalizedPart) (model.StockPlan, error) {
	const op = "stock.aggregator.Plan"

	groups, spares := a.group(parts)

	plan := model.StockPlan{
		Groups:             make([]model.StockGroup, 0, len(groups)),
		EstimatedSpareCost: decimal.Zero,
	}
	updated := make(map[int64]struct{})

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return model.StockPlan{}, fmt.Errorf("%s: %w", op, err)
		}

		g.Class = a.classes.StockClass(g.Key)

		target, err := a.policy.Target(g.Class, g.Installed)
		if err != nil {
			if !errors.Is(err, model.ErrPolicyConfiguration) {
				return model.StockPlan{}, fmt.Errorf("%s: %w", op, err)
			}
			logger.Warn(ctx, "stock target clamped",
				logger.String("stock_key", g.Key),
				logger.ErrorF(err),
			)
		}
		g.Target = target
		plan.Groups = append(plan.Groups, *g)

		for _, row := range a.updatableSpares(g, spares) {
			if _, done := updated[row.ID]; done || row.MinQuantity == target {
				continue
			}
			updated[row.ID] = struct{}{}
			plan.MinUpdates = append(plan.MinUpdates, model.MinQuantityUpdate{
				PartID:   row.ID,
				StockKey: g.Key,
				From:     row.MinQuantity,
				To:       target,
			})
		}

		if !a.policy.CreatesSpare(g.Class) || a.spareExists(g, spares) {
			continue
		}

		slot := a.newSpare(g)
		plan.Spares = append(plan.Spares, slot)
		if slot.Part.UnitCost.Valid {
			plan.EstimatedSpareCost = plan.EstimatedSpareCost.Add(
				slot.Part.UnitCost.Decimal.Mul(decimal.NewFromInt(target)),
			)
		}
	}

	return plan, nil
}

func (a *aggregator) group(parts []model.NormalizedPart) ([]*model.StockGroup, spareIndex) {
	spareCategory := strings.ToUpper(strings.TrimSpace(a.cfg.SpareCategory))

	spares := spareIndex{
		byStockKey: make(map[string][]*model.Part),
		legacy:     make(map[string][]*model.Part),
	}
	byKey := make(map[string]*model.StockGroup)
	var ordered []*model.StockGroup

	for _, p := range parts {
		if p.CategoryKey == spareCategory {
			if sk := strings.TrimSpace(p.Part.StockKey); sk != "" {
				spares.byStockKey[sk] = append(spares.byStockKey[sk], p.Part)
			} else {
				spares.legacy[p.Key] = append(spares.legacy[p.Key], p.Part)
			}
			continue
		}

		key := a.StockKey(p)
		g, ok := byKey[key]
		if !ok {
			g = &model.StockGroup{Key: key, Representative: p.Part}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		g.Installed += p.Part.Quantity
		g.PartIDs = append(g.PartIDs, p.Part.ID)
	}

	return ordered, spares
}

// StockKey is the upper-cased name, extended with the description
// fingerprint for classes whose models are not interchangeable.
func (a *aggregator) StockKey(p model.NormalizedPart) string {
	if !a.classes.SpecKeyed(a.classes.StockClass(p.Key)) {
		return p.Key
	}
	if fp := normalizer.Fingerprint(p.Description); fp != "" {
		return p.Key + keySeparator + fp
	}
	return p.Key
}

func (a *aggregator) spareExists(g *model.StockGroup, spares spareIndex) bool {
	if len(spares.byStockKey[g.Key]) > 0 {
		return true
	}
	repName := strings.ToUpper(strings.TrimSpace(g.Representative.Name))
	return len(spares.legacy[repName]) > 0
}

// updatableSpares are spare rows owned by g: rows carrying its stock key and,
// for plain name keys, legacy rows with the same name.
func (a *aggregator) updatableSpares(g *model.StockGroup, spares spareIndex) []*model.Part {
	rows := spares.byStockKey[g.Key]
	if !strings.Contains(g.Key, keySeparator) {
		rows = append(append([]*model.Part(nil), rows...), spares.legacy[g.Key]...)
	}
	return rows
}

func (a *aggregator) newSpare(g *model.StockGroup) model.SpareSlot {
	rep := g.Representative

	desc := normalizer.StripRiskTag(rep.Description)
	desc = strings.TrimSpace(fmt.Sprintf("%s (Support for %d installed units)", desc, g.Installed))

	return model.SpareSlot{
		StockKey:  g.Key,
		Installed: g.Installed,
		Part: model.Part{
			Name:         rep.Name,
			Description:  desc,
			Category:     a.cfg.SpareCategory,
			PartType:     rep.PartType,
			Manufacturer: rep.Manufacturer,
			PartNumber:   rep.PartNumber,
			Quantity:     0,
			MinQuantity:  g.Target,
			LeadTimeDays: rep.LeadTimeDays,
			Location:     a.cfg.SpareLocation,
			UnitCost:     rep.UnitCost,
			Supplier:     rep.Supplier,
			StockKey:     g.Key,
		},
	}
}
