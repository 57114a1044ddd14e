package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/you-humble/cimco-parts/internal/model"
)

// Rule turns an installed count into a spare target. A zero Ratio means Flat.
type Rule struct {
	Ratio        decimal.Decimal
	Flat         int64
	Min          int64
	Max          int64 // 0 means unbounded
	CreatesSpare bool
}

type Policy struct {
	rules    map[model.StockClass]Rule
	fallback Rule
}

func DefaultPolicy() *Policy {
	p, err := NewPolicy(map[model.StockClass]Rule{
		model.StockClassMotor:    {Ratio: decimal.RequireFromString("0.10"), Min: 1, Max: 10, CreatesSpare: true},
		model.StockClassGearbox:  {Ratio: decimal.RequireFromString("0.05"), Min: 1, CreatesSpare: true},
		model.StockClassBearing:  {Ratio: decimal.RequireFromString("0.20"), Min: 4, CreatesSpare: true},
		model.StockClassWearBit:  {Flat: 24},
		model.StockClassFastener: {Flat: 50},
		model.StockClassDefault:  {Flat: 1},
	})
	if err != nil {
		panic(err)
	}
	return p
}

func NewPolicy(rules map[model.StockClass]Rule) (*Policy, error) {
	const op = "stock.NewPolicy"

	p := &Policy{rules: make(map[model.StockClass]Rule, len(rules)), fallback: Rule{Flat: 1}}
	for class, r := range rules {
		switch {
		case r.Ratio.IsNegative(), r.Flat < 0, r.Min < 0, r.Max < 0:
			return nil, fmt.Errorf("%s: %w: %s has a negative bound", op, model.ErrPolicyConfiguration, class)
		case r.Max > 0 && r.Min > r.Max:
			return nil, fmt.Errorf("%s: %w: %s min %d above max %d", op, model.ErrPolicyConfiguration, class, r.Min, r.Max)
		}
		p.rules[class] = r
	}
	if r, ok := p.rules[model.StockClassDefault]; ok {
		p.fallback = r
	}

	return p, nil
}

func (p *Policy) Rule(class model.StockClass) Rule {
	if r, ok := p.rules[class]; ok {
		return r
	}
	return p.fallback
}

// Target computes the spare target for installed units of class. A negative
// raw target is clamped to 0 and reported with model.ErrPolicyConfiguration.
func (p *Policy) Target(class model.StockClass, installed int64) (int64, error) {
	r := p.Rule(class)

	target := r.Flat
	if r.Ratio.IsPositive() {
		target = decimal.NewFromInt(installed).Mul(r.Ratio).Ceil().IntPart()
	}

	// checked before Min/Max so a bad count cannot hide behind the floor
	if target < 0 {
		return 0, fmt.Errorf("stock.Policy.Target: %w: %s target %d for %d installed",
			model.ErrPolicyConfiguration, class, target, installed)
	}

	if r.Ratio.IsPositive() {
		target = max(target, r.Min)
		if r.Max > 0 {
			target = min(target, r.Max)
		}
	}
	return target, nil
}

func (p *Policy) CreatesSpare(class model.StockClass) bool {
	return p.Rule(class).CreatesSpare
}
