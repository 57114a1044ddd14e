package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/platform/logger"
)

type fakeAnalysis struct {
	gotOpts model.RunOptions
	summary *model.RunSummary
	err     error
	latest  *model.RunSummary
}

func (f *fakeAnalysis) Run(_ context.Context, opts model.RunOptions) (*model.RunSummary, error) {
	f.gotOpts = opts
	return f.summary, f.err
}

func (f *fakeAnalysis) Latest() (*model.RunSummary, bool) {
	return f.latest, f.latest != nil
}

type fakeParts map[int64]*model.Part

func (f fakeParts) PartByID(_ context.Context, id int64) (*model.Part, error) {
	p, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("part %d: %w", id, model.ErrPartNotFound)
	}
	return p, nil
}

func serve(h *handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStartRun(t *testing.T) {
	logger.SetNopLogger()

	tests := []struct {
		name     string
		target   string
		svc      *fakeAnalysis
		wantCode int
		wantOpts model.RunOptions
	}{
		{
			name:     "ok dry run",
			target:   "/analysis/runs?dry_run=true",
			svc:      &fakeAnalysis{summary: &model.RunSummary{RunID: "r1", DryRun: true}},
			wantCode: http.StatusOK,
			wantOpts: model.RunOptions{DryRun: true, Trigger: TriggerHTTP},
		},
		{
			name:     "ok skip stock",
			target:   "/analysis/runs?skip_stock=1",
			svc:      &fakeAnalysis{summary: &model.RunSummary{RunID: "r2"}},
			wantCode: http.StatusOK,
			wantOpts: model.RunOptions{SkipStock: true, Trigger: TriggerHTTP},
		},
		{
			name:     "bad flag",
			target:   "/analysis/runs?dry_run=maybe",
			svc:      &fakeAnalysis{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "run in progress",
			target:   "/analysis/runs",
			svc:      &fakeAnalysis{err: fmt.Errorf("x: %w", model.ErrRunInProgress)},
			wantCode: http.StatusConflict,
			wantOpts: model.RunOptions{Trigger: TriggerHTTP},
		},
		{
			name:     "store down",
			target:   "/analysis/runs",
			svc:      &fakeAnalysis{err: fmt.Errorf("list: %w", model.ErrStoreUnavailable)},
			wantCode: http.StatusServiceUnavailable,
			wantOpts: model.RunOptions{Trigger: TriggerHTTP},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewAnalysisHandler(tt.svc, fakeParts{}), http.MethodPost, tt.target)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantOpts, tt.svc.gotOpts)
			if tt.wantCode == http.StatusOK {
				var got model.RunSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, tt.svc.summary.RunID, got.RunID)
			}
		})
	}
}

func TestLatestRun(t *testing.T) {
	logger.SetNopLogger()

	svc := &fakeAnalysis{}
	h := NewAnalysisHandler(svc, fakeParts{})

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/analysis/runs/latest").Code)

	svc.latest = &model.RunSummary{RunID: "r9", SparesCreated: 2}
	rec := serve(h, http.MethodGet, "/analysis/runs/latest")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"run_id":"r9"`)
}

func TestGetPart(t *testing.T) {
	logger.SetNopLogger()

	score := 144
	h := NewAnalysisHandler(&fakeAnalysis{}, fakeParts{
		5: {ID: 5, Name: "HAMMER", Description: "MAIN HAMMER [Risk:144]", Category: "Shredder", RiskScore: &score},
	})

	rec := serve(h, http.MethodGet, "/parts/5")
	require.Equal(t, http.StatusOK, rec.Code)

	var got partResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "MAIN HAMMER [Risk:144]", got.Description)
	require.NotNil(t, got.RiskScore)
	assert.Equal(t, 144, *got.RiskScore)
	assert.Nil(t, got.UnitCost)

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/parts/6").Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/parts/abc").Code)
}
