package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/cimco-parts/internal/config"
	envconfig "github.com/you-humble/cimco-parts/internal/config/env"
	"github.com/you-humble/cimco-parts/internal/model"
	thttp "github.com/you-humble/cimco-parts/internal/transport/http/analysis/v1"
	"github.com/you-humble/cimco-parts/internal/transport/http/health"
	"github.com/you-humble/cimco-parts/platform/closer"
	"github.com/you-humble/cimco-parts/platform/logger"
	"github.com/you-humble/cimco-parts/platform/tracing"
)

const (
	ModeServe  = "serve"
	ModeRun    = "run"
	ModeImport = "import"

	TriggerCLI = "cli"
)

type Options struct {
	Mode      string
	File      string
	DryRun    bool
	SkipRisk  bool
	SkipStock bool
}

type app struct {
	opts   Options
	di     *di
	server *http.Server
}

func New(ctx context.Context, opts Options) (*app, error) {
	switch opts.Mode {
	case ModeServe, ModeRun:
	case ModeImport:
		if opts.File == "" {
			return nil, fmt.Errorf("%w: import mode needs a file", model.ErrInvalidArgument)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", model.ErrInvalidArgument, opts.Mode)
	}

	a := &app{opts: opts}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error {
	defer gracefulShutdown()

	switch a.opts.Mode {
	case ModeRun:
		return a.runOnce(ctx)
	case ModeImport:
		return a.importFile(ctx)
	default:
		return a.serve(ctx)
	}
}

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initTracing,
		a.initDI,
		a.initTables,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		// stdout/stderr sync fails on some terminals; nothing to recover
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initTracing(ctx context.Context) error {
	cfg := config.C().Tracing

	shutdown, err := tracing.Init(ctx, tracing.Config{
		ServiceName:  cfg.ServiceName(),
		Environment:  cfg.Environment(),
		Exporter:     cfg.Exporter(),
		OTLPEndpoint: cfg.OTLPEndpoint(),
		Insecure:     cfg.Insecure(),
		SampleRatio:  cfg.SampleRatio(),
	})
	if err != nil {
		logger.Error(ctx, "failed to init tracing", logger.ErrorF(err))
		return err
	}

	closer.AddNamed("Tracer provider", shutdown)
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if config.C().Store.Driver() != envconfig.DriverPostgres {
		return nil
	}

	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	if a.opts.Mode != ModeServe {
		return nil
	}

	cfg := config.C()

	handler := thttp.NewAnalysisHandler(
		a.di.AnalysisService(ctx),
		a.di.PartRepository(ctx),
	)

	r := a.di.Router(ctx)
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Mount("/v1", handler.Routes())

	r.HandleFunc("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	return nil
}

func (a *app) runOnce(ctx context.Context) error {
	summary, err := a.di.AnalysisService(ctx).Run(ctx, model.RunOptions{
		DryRun:    a.opts.DryRun,
		SkipRisk:  a.opts.SkipRisk,
		SkipStock: a.opts.SkipStock,
		Trigger:   TriggerCLI,
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "run summary",
		logger.String("run_id", summary.RunID),
		logger.Int("loaded", summary.Loaded),
		logger.Int("skipped", summary.Skipped),
		logger.Int("risk_tagged", summary.RiskTagged),
		logger.Int("stock_groups", summary.StockGroups),
		logger.Int("spares_planned", summary.SparesPlanned),
		logger.String("estimated_spare_cost", summary.EstimatedSpareCost.StringFixed(2)),
		logger.Any("findings", summary.Findings),
	)

	return nil
}

func (a *app) importFile(ctx context.Context) error {
	rows, err := a.di.PartsLoader(ctx, a.opts.File).LoadFile(a.opts.File)
	if err != nil {
		logger.Error(ctx, "failed to load parts file", logger.String("file", a.opts.File), logger.ErrorF(err))
		return err
	}

	res, err := a.di.ImporterService(ctx).Import(ctx, a.opts.File, rows)
	if err != nil {
		return err
	}

	logger.Info(ctx, "import finished",
		logger.String("import_id", res.ImportID),
		logger.Int("read", res.Read),
		logger.Int("created", res.Created),
		logger.Int("skipped", res.Skipped),
	)

	return nil
}

func (a *app) serve(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 parts imported consumer running",
				logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
			)
			return a.di.IngestConsumer(egCtx).RunPartsImportedConsume(egCtx)
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 analysis server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(egCtx, "🛑 Server shutdown...")

		sdCtx, cancel := context.WithTimeout(context.WithoutCancel(egCtx), config.C().Server.ShutdownTimeout())
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Stopped")
		return
	}
	logger.Info(ctx, "✅ Stopped")
}
