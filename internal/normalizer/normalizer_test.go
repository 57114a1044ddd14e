package normalizer

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/internal/model"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		part   *model.Part
		assert func(t *testing.T, np model.NormalizedPart, err error)
	}

	tests := []testCase{
		{
			name: "upper-cases and trims name and description",
			part: &model.Part{ID: 7, Name: "  hammer tip ", Description: " manganese cast ", Category: "Shredder", Quantity: 10},
			assert: func(t *testing.T, np model.NormalizedPart, err error) {
				require.NoError(t, err)
				assert.Equal(t, "HAMMER TIP", np.Key)
				assert.Equal(t, "HAMMER TIP", np.Name)
				assert.Equal(t, "MANGANESE CAST", np.Description)
				assert.Equal(t, "SHREDDER", np.CategoryKey)
				assert.False(t, np.Tagged)
				assert.Equal(t, int64(7), np.Part.ID)
			},
		},
		{
			name: "risk tag is removed from analysis text",
			part: &model.Part{Name: "Bearing", Description: "Dodge TXT 4 [Risk:60]", Category: "Conveyor 3"},
			assert: func(t *testing.T, np model.NormalizedPart, err error) {
				require.NoError(t, err)
				assert.Equal(t, "DODGE TXT 4", np.Description)
				assert.True(t, np.Tagged)
			},
		},
		{
			name: "empty name is skippable",
			part: &model.Part{Name: "   ", Category: "Conveyor 1"},
			assert: func(t *testing.T, _ model.NormalizedPart, err error) {
				assert.ErrorIs(t, err, model.ErrSkippableRecord)
			},
		},
		{
			name: "empty category is skippable",
			part: &model.Part{Name: "Belt"},
			assert: func(t *testing.T, _ model.NormalizedPart, err error) {
				assert.ErrorIs(t, err, model.ErrSkippableRecord)
			},
		},
		{
			name: "negative quantity is skippable",
			part: &model.Part{Name: "Belt", Category: "Conveyor 1", Quantity: -1},
			assert: func(t *testing.T, _ model.NormalizedPart, err error) {
				assert.ErrorIs(t, err, model.ErrSkippableRecord)
			},
		},
		{
			name: "nil part is skippable",
			part: nil,
			assert: func(t *testing.T, _ model.NormalizedPart, err error) {
				assert.ErrorIs(t, err, model.ErrSkippableRecord)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			np, err := Normalize(tt.part)
			tt.assert(t, np, err)
		})
	}
}

func TestNormalizeAllContinuesPastBadRows(t *testing.T) {
	t.Parallel()

	parts := []*model.Part{
		{ID: 1, Name: gofakeit.Noun(), Category: "Conveyor 1"},
		{ID: 2, Name: "", Category: "Conveyor 1"},
		{ID: 3, Name: gofakeit.Noun(), Category: "Shredder"},
	}

	ok, skipped := NormalizeAll(parts)
	require.Len(t, ok, 2)
	require.Len(t, skipped, 1)
	assert.Equal(t, int64(2), skipped[0].PartID)
	assert.Equal(t, int64(1), ok[0].Part.ID)
	assert.Equal(t, int64(3), ok[1].Part.ID)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DODGE TXT 4 REDUCER", Fingerprint("Dodge TXT 4 reducer 15:1 ratio"))
	assert.Equal(t, "GENERIC 5HP", Fingerprint("generic 5hp"))
	assert.Empty(t, Fingerprint("5HP"))
	assert.Empty(t, Fingerprint("A B C"))
	assert.Empty(t, Fingerprint(""))
}

func TestRiskTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[Risk:144]", RiskTag(144))
	assert.True(t, HasRiskTag("Hammer [Risk:144]"))
	assert.True(t, HasRiskTag("Hammer [risk: 12]"))
	assert.False(t, HasRiskTag("Hammer [Crit:12]"))
	assert.Equal(t, "Hammer", StripRiskTag("Hammer [Risk:144]"))
}

func TestFromRaw(t *testing.T) {
	t.Parallel()

	p, err := FromRaw(model.RawPart{
		Name:     " Motor ",
		Category: "Conveyor 2",
		Quantity: "3",
		UnitCost: "$1250.50",
	})
	require.NoError(t, err)
	assert.Equal(t, "Motor", p.Name)
	assert.Equal(t, int64(3), p.Quantity)
	require.True(t, p.UnitCost.Valid)
	assert.Equal(t, "1250.5", p.UnitCost.Decimal.String())

	_, err = FromRaw(model.RawPart{Name: "Motor", Category: "Conveyor 2", Quantity: "three"})
	assert.ErrorIs(t, err, model.ErrSkippableRecord)

	_, err = FromRaw(model.RawPart{Name: "Motor", Category: "Conveyor 2", UnitCost: "n/a"})
	assert.ErrorIs(t, err, model.ErrSkippableRecord)

	p, err = FromRaw(model.RawPart{Name: "Belt", Category: "Conveyor 2"})
	require.NoError(t, err)
	assert.Zero(t, p.Quantity)
	assert.False(t, p.UnitCost.Valid)
}
