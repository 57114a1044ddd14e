package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you-humble/cimco-parts/internal/archive"
	"github.com/you-humble/cimco-parts/internal/classifier"
	"github.com/you-humble/cimco-parts/internal/commonality"
	"github.com/you-humble/cimco-parts/internal/config"
	envconfig "github.com/you-humble/cimco-parts/internal/config/env"
	"github.com/you-humble/cimco-parts/internal/converter"
	"github.com/you-humble/cimco-parts/internal/flow"
	csvingest "github.com/you-humble/cimco-parts/internal/ingest/csv"
	xlsxingest "github.com/you-humble/cimco-parts/internal/ingest/xlsx"
	"github.com/you-humble/cimco-parts/internal/lock"
	"github.com/you-humble/cimco-parts/internal/model"
	pgrepo "github.com/you-humble/cimco-parts/internal/repository/part/postgres"
	sqliterepo "github.com/you-humble/cimco-parts/internal/repository/part/sqlite"
	"github.com/you-humble/cimco-parts/internal/service/analysis"
	ingestconsumer "github.com/you-humble/cimco-parts/internal/service/consumer/ingest"
	"github.com/you-humble/cimco-parts/internal/service/importer"
	importsproducer "github.com/you-humble/cimco-parts/internal/service/producer/imports"
	reportproducer "github.com/you-humble/cimco-parts/internal/service/producer/report"
	"github.com/you-humble/cimco-parts/internal/service/risk"
	"github.com/you-humble/cimco-parts/internal/service/stock"
	thttp "github.com/you-humble/cimco-parts/internal/transport/http/analysis/v1"
	"github.com/you-humble/cimco-parts/platform/closer"
	"github.com/you-humble/cimco-parts/platform/db/migrator"
	"github.com/you-humble/cimco-parts/platform/kafka"
	"github.com/you-humble/cimco-parts/platform/kafka/consumer"
	"github.com/you-humble/cimco-parts/platform/kafka/middleware"
	"github.com/you-humble/cimco-parts/platform/kafka/producer"
	"github.com/you-humble/cimco-parts/platform/logger"
)

type Converter interface {
	ingestconsumer.Converter
	importsproducer.Converter
	reportproducer.Converter
}

type PartRepository interface {
	analysis.PartRepository
	importer.PartCreator
	thttp.PartReader
}

type AnalysisService interface {
	thttp.AnalysisService
	ingestconsumer.Analyzer
}

type ImporterService interface {
	Import(ctx context.Context, source string, rows []model.RawPart) (model.ImportResult, error)
}

type PartsLoader interface {
	LoadFile(filename string) ([]model.RawPart, error)
}

type IngestConsumer interface {
	RunPartsImportedConsume(ctx context.Context) error
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	sqliteDB   *gorm.DB
	repository PartRepository

	wear    risk.WearClassifier
	scorer  analysis.RiskScorer
	planner analysis.StockPlanner

	redisClient *redis.Client
	runLocker   analysis.RunLocker
	archiver    analysis.ReportArchiver

	conv Converter

	syncProducer          sarama.SyncProducer
	runCompletedProducer  kafka.Producer
	partsImportedProducer kafka.Producer
	reportProducer        analysis.RunCompletedSender
	importsProducer       importer.PartsImportedSender

	consumerGroup         sarama.ConsumerGroup
	partsImportedConsumer kafka.Consumer
	ingestConsumer        IngestConsumer

	analysisService AnalysisService
	importerService ImporterService
	csvLoader       PartsLoader
	xlsxLoader      PartsLoader

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Store.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Store.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) SQLiteDB(ctx context.Context) *gorm.DB {
	if d.sqliteDB == nil {
		db, err := sqliterepo.Open(ctx, config.C().Store.SQLitePath())
		if err != nil {
			panic(fmt.Sprintf("failed to open sqlite store: %v\n", err))
		}

		closer.AddNamed("SQLite",
			func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			})

		d.sqliteDB = db
	}

	return d.sqliteDB
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.repository == nil {
		switch config.C().Store.Driver() {
		case envconfig.DriverSQLite:
			d.repository = sqliterepo.NewPartRepository(d.SQLiteDB(ctx))
		default:
			d.repository = pgrepo.NewPartRepository(d.DBPool(ctx))
		}
	}

	return d.repository
}

func (d *di) WearClassifier(_ context.Context) risk.WearClassifier {
	if d.wear == nil {
		base, err := classifier.NewWearClassifier(classifier.DefaultWearTable())
		if err != nil {
			panic(fmt.Sprintf("invalid wear table: %v\n", err))
		}

		cached, err := classifier.NewCachedClassifier(base, config.C().Engine.WearCacheSize())
		if err != nil {
			panic(fmt.Sprintf("failed to create wear cache: %v\n", err))
		}

		d.wear = cached
	}

	return d.wear
}

func (d *di) RiskScorer(ctx context.Context) analysis.RiskScorer {
	if d.scorer == nil {
		eng := config.C().Engine

		opts := commonality.DefaultOptions()
		opts.BrandMarkers = eng.BrandMarkers()
		opts.ExcludeCategories = []string{eng.SpareCategory()}

		d.scorer = risk.NewScorer(
			d.WearClassifier(ctx),
			flow.NewWeighter(flow.DefaultConfig()),
			risk.Config{
				Workers:     eng.Workers(),
				MaxFindings: eng.MaxFindings(),
				Commonality: opts,
			},
		)
	}

	return d.scorer
}

func (d *di) StockPlanner(_ context.Context) analysis.StockPlanner {
	if d.planner == nil {
		eng := config.C().Engine

		d.planner = stock.NewAggregator(
			classifier.DefaultStockClassTable(),
			stock.DefaultPolicy(),
			stock.Config{
				SpareCategory: eng.SpareCategory(),
				SpareLocation: eng.SpareLocation(),
			},
		)
	}

	return d.planner
}

func (d *di) RedisClient(ctx context.Context) *redis.Client {
	if d.redisClient == nil {
		cfg := config.C().Redis

		rdb := redis.NewClient(&redis.Options{
			Addr:        cfg.Addr(),
			Password:    cfg.Password(),
			DB:          cfg.DB(),
			DialTimeout: cfg.DialTimeout(),
		})

		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			panic(fmt.Sprintf("failed to ping redis %s: %v\n", cfg.Addr(), err))
		}

		closer.AddNamed("Redis", func(ctx context.Context) error {
			return rdb.Close()
		})

		d.redisClient = rdb
	}

	return d.redisClient
}

// RunLocker is nil unless redis is configured; the in-process guard still applies.
func (d *di) RunLocker(ctx context.Context) analysis.RunLocker {
	if d.runLocker == nil && config.C().Redis.Enabled() {
		cfg := config.C().Redis
		d.runLocker = lock.NewRedisLocker(d.RedisClient(ctx), cfg.LockKey(), cfg.LockTTL())
	}

	return d.runLocker
}

func (d *di) ReportArchiver(ctx context.Context) analysis.ReportArchiver {
	if d.archiver == nil && config.C().Archive.Enabled() {
		cfg := config.C().Archive

		client, err := archive.NewMinioClient(archive.Config{
			Endpoint:  cfg.Endpoint(),
			Region:    cfg.Region(),
			AccessKey: cfg.AccessKey(),
			SecretKey: cfg.SecretKey(),
			Bucket:    cfg.Bucket(),
			UseSSL:    cfg.UseSSL(),
		})
		if err != nil {
			panic(fmt.Sprintf("failed to create archive client: %v\n", err))
		}

		d.archiver = archive.NewArchiver(client, d.KafkaConverter(ctx), cfg.Bucket(), cfg.Region())
	}

	return d.archiver
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) RunCompletedProducer(ctx context.Context) kafka.Producer {
	if d.runCompletedProducer == nil {
		d.runCompletedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.RunCompletedTopic(),
			logger.L(),
		)
	}

	return d.runCompletedProducer
}

func (d *di) PartsImportedProducer(ctx context.Context) kafka.Producer {
	if d.partsImportedProducer == nil {
		d.partsImportedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.PartsImportedTopic(),
			logger.L(),
		)
	}

	return d.partsImportedProducer
}

func (d *di) ReportProducer(ctx context.Context) analysis.RunCompletedSender {
	if d.reportProducer == nil && config.C().Kafka.Enabled() {
		d.reportProducer = reportproducer.NewReportProducer(
			d.RunCompletedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.reportProducer
}

func (d *di) ImportsProducer(ctx context.Context) importer.PartsImportedSender {
	if d.importsProducer == nil && config.C().Kafka.Enabled() {
		d.importsProducer = importsproducer.NewImportsProducer(
			d.PartsImportedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.importsProducer
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.PartsImportedConsumerGroupID(),
			cfg.Kafka.PartsImportedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) PartsImportedConsumer(ctx context.Context) kafka.Consumer {
	if d.partsImportedConsumer == nil {
		d.partsImportedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.PartsImportedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.partsImportedConsumer
}

func (d *di) IngestConsumer(ctx context.Context) IngestConsumer {
	if d.ingestConsumer == nil {
		d.ingestConsumer = ingestconsumer.NewIngestConsumer(
			d.PartsImportedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.AnalysisService(ctx),
		)
	}

	return d.ingestConsumer
}

func (d *di) AnalysisService(ctx context.Context) AnalysisService {
	if d.analysisService == nil {
		d.analysisService = analysis.NewAnalysisService(
			d.PartRepository(ctx),
			d.RiskScorer(ctx),
			d.StockPlanner(ctx),
			d.RunLocker(ctx),
			d.ReportArchiver(ctx),
			d.ReportProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.analysisService
}

func (d *di) ImporterService(ctx context.Context) ImporterService {
	if d.importerService == nil {
		d.importerService = importer.NewImporterService(
			d.PartRepository(ctx),
			d.ImportsProducer(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.importerService
}

// PartsLoader picks the reader by file extension; anything but .xlsx is CSV.
func (d *di) PartsLoader(_ context.Context, filename string) PartsLoader {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		if d.xlsxLoader == nil {
			d.xlsxLoader = xlsxingest.NewLoader("")
		}
		return d.xlsxLoader
	}

	if d.csvLoader == nil {
		d.csvLoader = csvingest.NewLoader()
	}
	return d.csvLoader
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
