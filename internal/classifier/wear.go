package classifier

import (
	"fmt"
	"strings"

	"github.com/you-humble/cimco-parts/internal/model"
)

const (
	MinWearScore = 1
	MaxWearScore = 10
)

// Classifier scores how quickly a part wears out, 1 (static) to 10 (consumable).
type Classifier interface {
	WearScore(name, description string) int
}

type KeywordScore struct {
	Keyword string
	Score   int
}

// KeywordTable is an ordered keyword to score table. Copies are taken on construction.
type KeywordTable []KeywordScore

func DefaultWearTable() KeywordTable {
	return KeywordTable{
		{Keyword: "HAMMER", Score: 10},
		{Keyword: "ANVIL", Score: 9},
		{Keyword: "LINER", Score: 8},
		{Keyword: "GRATE", Score: 8},
		{Keyword: "CAP", Score: 7},
		{Keyword: "ROTOR", Score: 6},
		{Keyword: "BEARING", Score: 6},
		{Keyword: "IDLER", Score: 5},
		{Keyword: "BELT", Score: 5},
		{Keyword: "SCRAPER", Score: 5},
		{Keyword: "SEAL", Score: 4},
		{Keyword: "CHAIN", Score: 4},
		{Keyword: "MOTOR", Score: 2},
		{Keyword: "REDUCER", Score: 2},
		{Keyword: "SHAFT", Score: 2},
		{Keyword: "BOLT", Score: 1},
		{Keyword: "NUT", Score: 1},
		{Keyword: "WASHER", Score: 1},
	}
}

type wearClassifier struct {
	table KeywordTable
}

func NewWearClassifier(table KeywordTable) (*wearClassifier, error) {
	const op = "classifier.NewWearClassifier"

	if len(table) == 0 {
		return nil, fmt.Errorf("%s: %w: empty keyword table", op, model.ErrPolicyConfiguration)
	}

	normalized := make(KeywordTable, 0, len(table))
	for _, ks := range table {
		kw := strings.ToUpper(strings.TrimSpace(ks.Keyword))
		if kw == "" {
			return nil, fmt.Errorf("%s: %w: blank keyword", op, model.ErrPolicyConfiguration)
		}
		if ks.Score < MinWearScore || ks.Score > MaxWearScore {
			return nil, fmt.Errorf("%s: %w: %s score %d outside [%d,%d]",
				op, model.ErrPolicyConfiguration, kw, ks.Score, MinWearScore, MaxWearScore)
		}
		normalized = append(normalized, KeywordScore{Keyword: kw, Score: ks.Score})
	}

	return &wearClassifier{table: normalized}, nil
}

// WearScore is the highest score of any keyword found in name or description,
// or MinWearScore when nothing matches. Matching is substring based, so
// "CAP" also fires on "CAPACITOR"; that mirrors how the plant names parts.
func (c *wearClassifier) WearScore(name, description string) int {
	text := strings.ToUpper(name + " " + description)

	score := MinWearScore
	for _, ks := range c.table {
		if ks.Score > score && strings.Contains(text, ks.Keyword) {
			score = ks.Score
		}
	}

	return score
}
