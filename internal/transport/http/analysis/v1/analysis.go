package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/platform/logger"
)

const TriggerHTTP = "http"

type AnalysisService interface {
	Run(ctx context.Context, opts model.RunOptions) (*model.RunSummary, error)
	Latest() (*model.RunSummary, bool)
}

type PartReader interface {
	PartByID(ctx context.Context, id int64) (*model.Part, error)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type handler struct {
	svc   AnalysisService
	parts PartReader
}

func NewAnalysisHandler(svc AnalysisService, parts PartReader) *handler {
	return &handler{svc: svc, parts: parts}
}

func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/analysis/runs", h.StartRun)
	r.Get("/analysis/runs/latest", h.LatestRun)
	r.Get("/parts/{id}", h.GetPart)
	return r
}

func (h *handler) StartRun(w http.ResponseWriter, r *http.Request) {
	opts := model.RunOptions{Trigger: TriggerHTTP}

	q := r.URL.Query()
	for name, dst := range map[string]*bool{
		"dry_run":    &opts.DryRun,
		"skip_risk":  &opts.SkipRisk,
		"skip_stock": &opts.SkipStock,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid "+name)
			return
		}
		*dst = b
	}

	summary, err := h.svc.Run(r.Context(), opts)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, summary)
}

func (h *handler) LatestRun(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.svc.Latest()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no completed run")
		return
	}

	writeJSON(w, r, http.StatusOK, summary)
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid part id")
		return
	}

	p, err := h.parts.PartByID(r.Context(), id)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partToResponse(p))
}

func writeMappedError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrPartNotFound):
		writeError(w, r, http.StatusNotFound, err.Error()) // 404
	case errors.Is(err, model.ErrRunInProgress):
		writeError(w, r, http.StatusConflict, err.Error()) // 409
	case errors.Is(err, model.ErrPolicyConfiguration):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error()) // 422
	case errors.Is(err, model.ErrStoreUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, err.Error()) // 503
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error()) // 500
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	writeJSON(w, r, code, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}
