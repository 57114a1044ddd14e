package risk

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/internal/classifier"
	"github.com/you-humble/cimco-parts/internal/flow"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/normalizer"
)

func newTestScorer(t *testing.T) *scorer {
	t.Helper()

	wear, err := classifier.NewWearClassifier(classifier.DefaultWearTable())
	require.NoError(t, err)

	return NewScorer(wear, flow.NewWeighter(flow.DefaultConfig()), DefaultConfig())
}

func normalizeAll(t *testing.T, parts ...*model.Part) []model.NormalizedPart {
	t.Helper()

	ok, skipped := normalizer.NormalizeAll(parts)
	require.Empty(t, skipped)
	return ok
}

func TestScoreHammerScenario(t *testing.T) {
	t.Parallel()

	parts := normalizeAll(t,
		&model.Part{ID: 1, Name: "HAMMER", Description: "MAIN HAMMER", Category: "Shredder", Quantity: 1},
		&model.Part{ID: 2, Name: "HAMMER", Description: "MAIN HAMMER", Category: "Conveyor 1", Quantity: 1},
	)

	res, err := newTestScorer(t).Score(context.Background(), parts)
	require.NoError(t, err)
	require.Len(t, res.Assessments, 2)

	shredder, conveyor := res.Assessments[0], res.Assessments[1]

	assert.Equal(t, 10, shredder.Wear)
	assert.Equal(t, 10, conveyor.Wear)
	assert.Equal(t, 2, shredder.Commonality)
	assert.Equal(t, 2, conveyor.Commonality)
	assert.Equal(t, "1.2", shredder.Flow.String())
	assert.Equal(t, "1", conveyor.Flow.String())
	assert.Equal(t, 144, shredder.Score)
	assert.Equal(t, 120, conveyor.Score)
	assert.Equal(t, "MAIN HAMMER [Risk:144]", shredder.Description)
	assert.Equal(t, "MAIN HAMMER [Risk:120]", conveyor.Description)

	// two machines is not enough to be reported as shared
	assert.Empty(t, res.Findings)
}

func TestScoreTagIsIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)
	part := &model.Part{ID: 1, Name: "Idler", Description: "Troughing idler 35deg", Category: "Conveyor 4"}

	first, err := s.Score(context.Background(), normalizeAll(t, part))
	require.NoError(t, err)
	u := first.Assessments[0].Update()
	require.NotNil(t, u.Description)

	part.Description = *u.Description
	second, err := s.Score(context.Background(), normalizeAll(t, part))
	require.NoError(t, err)

	a := second.Assessments[0]
	assert.True(t, a.Tagged)
	assert.Equal(t, part.Description, a.Description)
	assert.Nil(t, a.Update().Description)
	assert.Equal(t, first.Assessments[0].Score, a.Score)
	assert.Equal(t, 1, countTags(a.Description))
}

func TestScoreFindings(t *testing.T) {
	t.Parallel()

	var parts []*model.Part
	for i := 1; i <= 3; i++ {
		parts = append(parts, &model.Part{
			ID:          int64(i),
			Name:        "Drive",
			Description: "Dodge TXT 4 reducer 15:1",
			Category:    fmt.Sprintf("Conveyor %d", i),
		})
	}
	for i := 1; i <= 3; i++ {
		parts = append(parts, &model.Part{
			ID:       int64(10 + i),
			Name:     "Washer",
			Category: fmt.Sprintf("Conveyor %d", i),
		})
	}

	res, err := newTestScorer(t).Score(context.Background(), normalizeAll(t, parts...))
	require.NoError(t, err)

	// wear 1 parts are never reported, duplicates are collapsed
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "DRIVE (DODGE TXT 4 REDUCER)", res.Findings[0].Label)
	assert.Equal(t, 3, res.Findings[0].Commonality)
	assert.Equal(t, 2, res.Findings[0].Wear)
}

func TestScoreFindingsAreCapped(t *testing.T) {
	t.Parallel()

	var parts []*model.Part
	for n := 0; n < 8; n++ {
		name := fmt.Sprintf("Belt %d", n)
		for c := 1; c <= 3; c++ {
			parts = append(parts, &model.Part{Name: name, Category: fmt.Sprintf("Conveyor %d", c)})
		}
	}

	res, err := newTestScorer(t).Score(context.Background(), normalizeAll(t, parts...))
	require.NoError(t, err)
	assert.Len(t, res.Findings, 5)
	assert.Equal(t, "BELT 0", res.Findings[0].Label)
}

func TestScoreFindingsIgnoreUnbrandedDescriptions(t *testing.T) {
	t.Parallel()

	parts := normalizeAll(t,
		&model.Part{ID: 1, Name: "Idler", Description: "Troughing idler 20 deg", Category: "Conveyor 1"},
		&model.Part{ID: 2, Name: "Idler", Description: "Return idler flat", Category: "Conveyor 2"},
		&model.Part{ID: 3, Name: "Idler", Description: "Impact idler 35", Category: "Conveyor 3"},
	)

	res, err := newTestScorer(t).Score(context.Background(), parts)
	require.NoError(t, err)

	for _, a := range res.Assessments {
		assert.Empty(t, a.Fingerprint)
		assert.Equal(t, 3, a.Commonality)
	}
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "IDLER", res.Findings[0].Label)
}

func TestScoreFindingsCapWithVariedDescriptions(t *testing.T) {
	t.Parallel()

	var parts []*model.Part
	for n := 0; n < 8; n++ {
		name := fmt.Sprintf("Belt %d", n)
		for c := 1; c <= 3; c++ {
			parts = append(parts, &model.Part{
				Name:        name,
				Description: gofakeit.LetterN(6) + " " + gofakeit.LetterN(6) + " belt",
				Category:    fmt.Sprintf("Conveyor %d", c),
			})
		}
	}

	res, err := newTestScorer(t).Score(context.Background(), normalizeAll(t, parts...))
	require.NoError(t, err)
	require.Len(t, res.Findings, 5)
	for n, f := range res.Findings {
		assert.Equal(t, fmt.Sprintf("BELT %d", n), f.Label)
	}
}

func TestScoreKeepsOrderUnderConcurrency(t *testing.T) {
	t.Parallel()

	parts := make([]*model.Part, 0, 200)
	for i := 0; i < 200; i++ {
		parts = append(parts, &model.Part{
			ID:       int64(i + 1),
			Name:     gofakeit.RandomString([]string{"HAMMER", "BELT", "MOTOR", "BOLT"}),
			Category: fmt.Sprintf("Conveyor %d", gofakeit.IntRange(1, 40)),
		})
	}

	res, err := newTestScorer(t).Score(context.Background(), normalizeAll(t, parts...))
	require.NoError(t, err)
	require.Len(t, res.Assessments, len(parts))
	for i, a := range res.Assessments {
		assert.Equal(t, parts[i].ID, a.PartID)
	}
}

func TestScoreCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScorer(t).Score(ctx, normalizeAll(t, &model.Part{Name: "Belt", Category: "Conveyor 1"}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMultiplier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", Multiplier(0).String())
	assert.Equal(t, "1", Multiplier(1).String())
	assert.Equal(t, "1.2", Multiplier(2).String())
	assert.Equal(t, "1.5", Multiplier(5).String())
}

func TestTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[Risk:12]", Tag("", 12))
	assert.Equal(t, "Seal kit [Risk:40]", Tag("Seal kit ", 40))
	assert.Equal(t, "Seal kit [Risk:40]", Tag("Seal kit [Risk:40]", 55))
}

func countTags(s string) int {
	n := 0
	for i := 0; i+6 <= len(s); i++ {
		if s[i:i+6] == "[Risk:" {
			n++
		}
	}
	return n
}
