// Package normalizer turns stored parts into the canonical per-run form the
// engine matches on, and validates ingestion tuples before they are stored.
package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/you-humble/cimco-parts/internal/model"
)

const (
	// FingerprintTokens is the number of leading description tokens in a spec fingerprint.
	FingerprintTokens = 4
	// fingerprints of this length or shorter carry no model information
	minFingerprintLen = 5
)

var riskTagRe = regexp.MustCompile(`(?i)\s*\[\s*risk\s*:\s*-?\d+\s*\]`)

func RiskTag(score int) string {
	return fmt.Sprintf("[Risk:%d]", score)
}

func HasRiskTag(desc string) bool {
	return riskTagRe.MatchString(desc)
}

func StripRiskTag(desc string) string {
	return strings.TrimSpace(riskTagRe.ReplaceAllString(desc, ""))
}

// Normalize builds the analysis view of p. A part without a name or category,
// or with negative quantities, is reported with model.ErrSkippableRecord.
func Normalize(p *model.Part) (model.NormalizedPart, error) {
	if p == nil {
		return model.NormalizedPart{}, fmt.Errorf("%w: nil part", model.ErrSkippableRecord)
	}

	name := strings.ToUpper(strings.TrimSpace(p.Name))
	if name == "" {
		return model.NormalizedPart{}, fmt.Errorf("%w: empty name", model.ErrSkippableRecord)
	}

	category := strings.TrimSpace(p.Category)
	if category == "" {
		return model.NormalizedPart{}, fmt.Errorf("%w: empty category", model.ErrSkippableRecord)
	}

	if p.Quantity < 0 || p.MinQuantity < 0 {
		return model.NormalizedPart{}, fmt.Errorf("%w: negative quantity", model.ErrSkippableRecord)
	}

	return model.NormalizedPart{
		Part:        p,
		Key:         name,
		Name:        name,
		Description: strings.ToUpper(StripRiskTag(p.Description)),
		CategoryKey: strings.ToUpper(category),
		Tagged:      HasRiskTag(p.Description),
	}, nil
}

// NormalizeAll keeps going past bad rows; every dropped row is returned as skipped.
func NormalizeAll(parts []*model.Part) ([]model.NormalizedPart, []model.SkippedRecord) {
	out := make([]model.NormalizedPart, 0, len(parts))
	var skipped []model.SkippedRecord

	for _, p := range parts {
		np, err := Normalize(p)
		if err != nil {
			rec := model.SkippedRecord{Reason: err.Error()}
			if p != nil {
				rec.PartID = p.ID
				rec.Name = p.Name
			}
			skipped = append(skipped, rec)
			continue
		}
		out = append(out, np)
	}

	return out, skipped
}

// Fingerprint returns the first FingerprintTokens tokens of desc, upper-cased,
// or "" when that prefix is too short to tell models apart.
func Fingerprint(desc string) string {
	tokens := strings.Fields(strings.ToUpper(desc))
	if len(tokens) > FingerprintTokens {
		tokens = tokens[:FingerprintTokens]
	}

	fp := strings.Join(tokens, " ")
	if len(fp) <= minFingerprintLen {
		return ""
	}
	return fp
}

// FromRaw validates an ingestion tuple and converts it into a new Part.
func FromRaw(raw model.RawPart) (*model.Part, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", model.ErrSkippableRecord)
	}

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: empty category", model.ErrSkippableRecord)
	}

	var qty int64
	if q := strings.TrimSpace(raw.Quantity); q != "" {
		v, err := strconv.ParseInt(q, 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: quantity %q", model.ErrSkippableRecord, raw.Quantity)
		}
		qty = v
	}

	var cost decimal.NullDecimal
	if c := strings.TrimSpace(raw.UnitCost); c != "" {
		d, err := decimal.NewFromString(strings.TrimPrefix(c, "$"))
		if err != nil || d.IsNegative() {
			return nil, fmt.Errorf("%w: unit cost %q", model.ErrSkippableRecord, raw.UnitCost)
		}
		cost = decimal.NewNullDecimal(d)
	}

	return &model.Part{
		Name:         name,
		Description:  strings.TrimSpace(raw.Description),
		Category:     category,
		PartType:     strings.TrimSpace(raw.PartType),
		Manufacturer: strings.TrimSpace(raw.Manufacturer),
		PartNumber:   strings.TrimSpace(raw.PartNumber),
		Quantity:     qty,
		Location:     strings.TrimSpace(raw.Location),
		UnitCost:     cost,
		Supplier:     strings.TrimSpace(raw.Supplier),
	}, nil
}
