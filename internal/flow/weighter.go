// Package flow weights machines by their position in the material flow:
// the shredder feeds everything, conveyors further downstream matter less.
package flow

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var conveyorRe = regexp.MustCompile(`(?i)\bconveyor\s*#?\s*(\d+)`)

type Config struct {
	ShredderMarker string
	ShredderWeight decimal.Decimal
	Base           decimal.Decimal
	ConveyorDecay  decimal.Decimal
	Floor          decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		ShredderMarker: "SHREDDER",
		ShredderWeight: decimal.RequireFromString("1.2"),
		Base:           decimal.NewFromInt(1),
		ConveyorDecay:  decimal.RequireFromString("0.02"),
		Floor:          decimal.RequireFromString("0.5"),
	}
}

type Weighter struct {
	cfg Config
}

func NewWeighter(cfg Config) *Weighter {
	cfg.ShredderMarker = strings.ToUpper(strings.TrimSpace(cfg.ShredderMarker))
	return &Weighter{cfg: cfg}
}

// Weight returns the flow priority of a category: the shredder weight when
// the shredder marker is present, the base weight at Conveyor 1 decaying
// linearly down to the floor for higher conveyor numbers, and the base
// weight otherwise.
func (w *Weighter) Weight(category string) decimal.Decimal {
	if w.cfg.ShredderMarker != "" && strings.Contains(strings.ToUpper(category), w.cfg.ShredderMarker) {
		return w.cfg.ShredderWeight
	}

	m := conveyorRe.FindStringSubmatch(category)
	if m == nil {
		return w.cfg.Base
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// too far downstream to count
		return w.cfg.Floor
	case err != nil || n < 1:
		return w.cfg.Base
	}

	weight := w.cfg.Base.Sub(w.cfg.ConveyorDecay.Mul(decimal.NewFromInt(n - 1)))
	return decimal.Max(weight, w.cfg.Floor)
}
