package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/normalizer"
	"github.com/you-humble/cimco-parts/platform/logger"
)

type PartRepository interface {
	List(ctx context.Context) ([]*model.Part, error)
	ApplyRiskUpdates(ctx context.Context, updates []model.RiskUpdate) (int, error)
	ApplyStockPlan(ctx context.Context, plan model.StockPlan) (model.StockPlanResult, error)
}

type RiskScorer interface {
	Score(ctx context.Context, parts []model.NormalizedPart) (model.RiskResult, error)
}

type StockPlanner interface {
	Plan(ctx context.Context, parts []model.NormalizedPart) (model.StockPlan, error)
}

type RunLocker interface {
	Acquire(ctx context.Context) (release func(context.Context) error, err error)
}

type ReportArchiver interface {
	Archive(ctx context.Context, summary *model.RunSummary) error
}

type RunCompletedSender interface {
	SendRunCompleted(ctx context.Context, summary *model.RunSummary) error
}

type service struct {
	repo     PartRepository
	scorer   RiskScorer
	planner  StockPlanner
	locker   RunLocker
	archiver ReportArchiver
	sender   RunCompletedSender
	tracer   trace.Tracer

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration

	running sync.Mutex
	mu      sync.RWMutex
	latest  *model.RunSummary
}

// NewAnalysisService wires the run pipeline. locker, archiver and sender are optional.
func NewAnalysisService(
	repo PartRepository,
	scorer RiskScorer,
	planner StockPlanner,
	locker RunLocker,
	archiver ReportArchiver,
	sender RunCompletedSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		scorer:         scorer,
		planner:        planner,
		locker:         locker,
		archiver:       archiver,
		sender:         sender,
		tracer:         otel.Tracer("cimco-parts/analysis"),
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Run executes one batch pass: load, normalize, risk phase, stock phase.
// Every phase commits on its own, so a failed stock phase leaves the risk
// phase in place.
func (svc *service) Run(ctx context.Context, opts model.RunOptions) (*model.RunSummary, error) {
	const op = "analysis.service.Run"

	if !svc.running.TryLock() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrRunInProgress)
	}
	defer svc.running.Unlock()

	if svc.locker != nil {
		release, err := svc.locker.Acquire(ctx)
		if err != nil {
			logger.Warn(ctx, "run lock not acquired", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				logger.Warn(ctx, "run lock release", logger.ErrorF(err))
			}
		}()
	}

	summary := &model.RunSummary{
		RunID:     uuid.NewString(),
		Trigger:   opts.Trigger,
		DryRun:    opts.DryRun,
		StartedAt: time.Now().UTC(),
		Findings:  []model.Finding{},
	}

	ctx = logger.WithRunID(ctx, summary.RunID)
	ctx, span := svc.tracer.Start(ctx, "analysis.Run", trace.WithAttributes(
		attribute.String("run_id", summary.RunID),
		attribute.Bool("dry_run", opts.DryRun),
	))
	defer span.End()
	if sc := span.SpanContext(); sc.HasTraceID() {
		ctx = logger.WithTraceID(ctx, sc.TraceID().String())
	}

	log := logger.With(
		logger.String("trigger", opts.Trigger),
		logger.Bool("dry_run", opts.DryRun),
	)
	log.Info(ctx, "analysis run started")

	if err := svc.run(ctx, opts, summary); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error(ctx, "analysis run failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary.FinishedAt = time.Now().UTC()
	svc.setLatest(summary)

	log.Info(ctx, "analysis run finished",
		logger.Int("processed", summary.Processed),
		logger.Int("skipped", summary.Skipped),
		logger.Int("risk_updated", summary.RiskUpdated),
		logger.Int("min_updated", summary.MinUpdated),
		logger.Int("spares_created", summary.SparesCreated),
		logger.Duration("took", summary.FinishedAt.Sub(summary.StartedAt)),
	)

	svc.publish(ctx, summary)

	return summary, nil
}

func (svc *service) run(ctx context.Context, opts model.RunOptions, summary *model.RunSummary) error {
	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	parts, err := svc.repo.List(rdbCtx)
	if err != nil {
		return storeErr("list parts", err)
	}

	normalized, skipped := normalizer.NormalizeAll(parts)
	for _, s := range skipped {
		logger.Warn(ctx, "record skipped",
			logger.Int64("part_id", s.PartID),
			logger.String("name", s.Name),
			logger.String("reason", s.Reason),
		)
	}

	summary.Loaded = len(parts)
	summary.Processed = len(normalized)
	summary.Skipped = len(skipped)

	if !opts.SkipRisk {
		if err := svc.riskPhase(ctx, normalized, opts.DryRun, summary); err != nil {
			return err
		}
	}

	if !opts.SkipStock {
		if err := svc.stockPhase(ctx, normalized, opts.DryRun, summary); err != nil {
			return err
		}
	}

	return nil
}

func (svc *service) riskPhase(
	ctx context.Context,
	parts []model.NormalizedPart,
	dryRun bool,
	summary *model.RunSummary,
) error {
	ctx, span := svc.tracer.Start(ctx, "analysis.risk", trace.WithAttributes(attribute.Int("parts", len(parts))))
	defer span.End()

	res, err := svc.scorer.Score(ctx, parts)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("risk phase: %w", err)
	}

	summary.Findings = append(summary.Findings, res.Findings...)
	summary.RiskTagged = lo.CountBy(res.Assessments, func(a model.RiskAssessment) bool { return !a.Tagged })

	for _, f := range res.Findings {
		logger.Info(ctx, "shared high-wear part",
			logger.String("label", f.Label),
			logger.Int("machines", f.Commonality),
			logger.Int("wear", f.Wear),
		)
	}

	if dryRun {
		return nil
	}

	updates := lo.Map(res.Assessments, func(a model.RiskAssessment, _ int) model.RiskUpdate {
		return a.Update()
	})

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	n, err := svc.repo.ApplyRiskUpdates(wdbCtx, updates)
	if err != nil {
		span.RecordError(err)
		return storeErr("apply risk updates", err)
	}
	summary.RiskUpdated = n
	span.SetAttributes(attribute.Int("updated", n))

	return nil
}

func (svc *service) stockPhase(
	ctx context.Context,
	parts []model.NormalizedPart,
	dryRun bool,
	summary *model.RunSummary,
) error {
	ctx, span := svc.tracer.Start(ctx, "analysis.stock", trace.WithAttributes(attribute.Int("parts", len(parts))))
	defer span.End()

	plan, err := svc.planner.Plan(ctx, parts)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("stock phase: %w", err)
	}

	summary.StockGroups = len(plan.Groups)
	summary.SparesPlanned = len(plan.Spares)
	summary.EstimatedSpareCost = plan.EstimatedSpareCost

	if dryRun {
		return nil
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	res, err := svc.repo.ApplyStockPlan(wdbCtx, plan)
	if err != nil {
		span.RecordError(err)
		return storeErr("apply stock plan", err)
	}
	summary.MinUpdated = res.MinUpdated
	summary.SparesCreated = res.SparesCreated
	span.SetAttributes(
		attribute.Int("min_updated", res.MinUpdated),
		attribute.Int("spares_created", res.SparesCreated),
	)

	return nil
}

// publish is best effort: the run is already committed.
func (svc *service) publish(ctx context.Context, summary *model.RunSummary) {
	if svc.archiver != nil {
		if err := svc.archiver.Archive(ctx, summary); err != nil {
			logger.Warn(ctx, "archive run summary", logger.ErrorF(err))
		}
	}

	if svc.sender != nil && !summary.DryRun {
		if err := svc.sender.SendRunCompleted(ctx, summary); err != nil {
			logger.Warn(ctx, "send run completed", logger.ErrorF(err))
		}
	}
}

// Latest returns the summary of the last successful run in this process.
func (svc *service) Latest() (*model.RunSummary, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if svc.latest == nil {
		return nil, false
	}
	cp := *svc.latest
	return &cp, true
}

func (svc *service) setLatest(s *model.RunSummary) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.latest = s
}

func storeErr(what string, err error) error {
	if errors.Is(err, model.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", what, err)
	}
	return fmt.Errorf("%s: %w: %w", what, model.ErrStoreUnavailable, err)
}
