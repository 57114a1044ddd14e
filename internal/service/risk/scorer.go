package risk

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/cimco-parts/internal/commonality"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/normalizer"
)

type WearClassifier interface {
	WearScore(name, description string) int
}

type FlowWeighter interface {
	Weight(category string) decimal.Decimal
}

type Config struct {
	Workers     int
	MaxFindings int
	Commonality commonality.Options
}

func DefaultConfig() Config {
	return Config{
		Workers:     4,
		MaxFindings: 5,
		Commonality: commonality.DefaultOptions(),
	}
}

var (
	wearScale      = decimal.NewFromInt(10)
	commonalityInc = decimal.RequireFromString("0.1")
	one            = decimal.NewFromInt(1)
)

type scorer struct {
	wear WearClassifier
	flow FlowWeighter
	cfg  Config
}

func NewScorer(wear WearClassifier, flow FlowWeighter, cfg Config) *scorer {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &scorer{wear: wear, flow: flow, cfg: cfg}
}

// Score builds the commonality index over all parts and then assesses every
// part against it. Assessments keep the input order.
func (s *scorer) Score(ctx context.Context, parts []model.NormalizedPart) (model.RiskResult, error) {
	const op = "risk.scorer.Score"

	ix := commonality.Build(parts, s.cfg.Commonality)

	out := make([]model.RiskAssessment, len(parts))
	chunk := (len(parts) + s.cfg.Workers - 1) / s.cfg.Workers

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(parts); start += chunk {
		end := min(start+chunk, len(parts))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				out[i] = s.assess(ix, parts[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.RiskResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return model.RiskResult{
		Assessments: out,
		Findings:    s.findings(out, parts),
	}, nil
}

func (s *scorer) assess(ix *commonality.Index, p model.NormalizedPart) model.RiskAssessment {
	wear := s.wear.WearScore(p.Name, p.Description)
	weight := s.flow.Weight(p.Part.Category)
	match := ix.Lookup(p)
	mult := Multiplier(match.Count)

	a := model.RiskAssessment{
		PartID:      p.Part.ID,
		Key:         p.Key,
		Wear:        wear,
		Flow:        weight,
		Commonality: match.Count,
		Multiplier:  mult,
		Score:       Compute(wear, weight, mult),
		Description: p.Part.Description,
		Tagged:      p.Tagged,
	}
	// only an indexed fingerprint links machines; others would split findings
	if match.BySpec > 0 {
		a.Fingerprint = match.Fingerprint
	}
	if !p.Tagged {
		a.Description = Tag(p.Part.Description, a.Score)
	}

	return a
}

// Multiplier is 1 for a part used on a single machine and 1 + 0.1 per machine otherwise.
func Multiplier(commonality int) decimal.Decimal {
	if commonality <= 1 {
		return one
	}
	return one.Add(commonalityInc.Mul(decimal.NewFromInt(int64(commonality))))
}

// Compute returns wear*10 * flow * multiplier truncated to an integer.
func Compute(wear int, flow, multiplier decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(wear)).Mul(wearScale).Mul(flow).Mul(multiplier).IntPart())
}

// Tag appends a risk tag unless desc already carries one.
func Tag(desc string, score int) string {
	if normalizer.HasRiskTag(desc) {
		return desc
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return normalizer.RiskTag(score)
	}
	return desc + " " + normalizer.RiskTag(score)
}

func (s *scorer) findings(assessments []model.RiskAssessment, parts []model.NormalizedPart) []model.Finding {
	var out []model.Finding
	seen := make(map[string]struct{})

	for i, a := range assessments {
		if len(out) >= s.cfg.MaxFindings {
			break
		}
		if a.Commonality <= 2 || a.Wear <= 1 {
			continue
		}

		label := parts[i].Name
		if a.Fingerprint != "" {
			label = fmt.Sprintf("%s (%s)", parts[i].Name, a.Fingerprint)
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}

		out = append(out, model.Finding{
			Label:       label,
			Commonality: a.Commonality,
			Wear:        a.Wear,
			Score:       a.Score,
		})
	}

	return out
}
