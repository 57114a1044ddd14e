package ingestconsumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/platform/kafka"
	"github.com/you-humble/cimco-parts/platform/logger"
)

const TriggerPartsImported = "parts.imported"

type Converter interface {
	PartsImportedToModel(data []byte) (model.PartsImported, error)
}

type Analyzer interface {
	Run(ctx context.Context, opts model.RunOptions) (*model.RunSummary, error)
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	analyzer Analyzer
}

func NewIngestConsumer(
	consumer kafka.Consumer,
	conv Converter,
	analyzer Analyzer,
) *service {
	return &service{consumer: consumer, conv: conv, analyzer: analyzer}
}

func (s *service) RunPartsImportedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting parts imported consumer")

	if err := s.consumer.Consume(ctx, s.partsImportedHandler); err != nil {
		logger.Error(ctx, "Consume from parts.imported topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) partsImportedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.PartsImportedToModel(msg.Value)
	if err != nil {
		// A malformed event is dropped; redelivery would not fix it.
		logger.Error(ctx, "Failed to decode PartsImported", logger.ErrorF(err))
		return nil
	}

	log := logger.With(
		logger.String("import_id", event.ImportID),
		logger.String("source", event.Source),
		logger.Int("record_count", event.RecordCount),
	)

	summary, err := s.analyzer.Run(ctx, model.RunOptions{Trigger: TriggerPartsImported})
	if err != nil {
		if errors.Is(err, model.ErrRunInProgress) {
			log.Info(ctx, "analysis already running, import will be picked up by it or the next run")
			return nil
		}
		log.Error(ctx, "analysis run after import", logger.ErrorF(err))
		return fmt.Errorf("analysis run for import %s: %w", event.ImportID, err)
	}

	log.Info(ctx, "analysis run after import finished", logger.String("run_id", summary.RunID))
	return nil
}
