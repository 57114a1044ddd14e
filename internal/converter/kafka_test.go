package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/internal/model"
)

func TestPartsImportedToModel(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()

	tests := []struct {
		name    string
		data    string
		want    model.PartsImported
		wantErr error
	}{
		{
			name: "valid",
			data: `{"import_id":"a1","source":"erp.csv","record_count":12}`,
			want: model.PartsImported{ImportID: "a1", Source: "erp.csv", RecordCount: 12},
		},
		{name: "empty import id", data: `{"source":"erp.csv"}`, wantErr: model.ErrInvalidArgument},
		{name: "negative count", data: `{"import_id":"a1","record_count":-1}`, wantErr: model.ErrInvalidArgument},
		{name: "garbage", data: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.PartsImportedToModel([]byte(tt.data))
			if tt.want.ImportID == "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunSummaryToPayload(t *testing.T) {
	t.Parallel()

	s := &model.RunSummary{
		RunID:              "r1",
		StartedAt:          time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		SparesCreated:      2,
		EstimatedSpareCost: decimal.RequireFromString("1240.50"),
		Findings:           []model.Finding{{Label: "GEAR (DODGE TIGEAR 2 SPEED)", Commonality: 3, Wear: 3}},
	}

	payload, err := NewKafkaConverter().RunSummaryToPayload(s)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "r1", got["run_id"])
	assert.Equal(t, "1240.5", got["estimated_spare_cost"])
	assert.EqualValues(t, 2, got["spares_created"])
	assert.Len(t, got["findings"], 1)
}
