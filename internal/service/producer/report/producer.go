package reportproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/cimco-parts/internal/converter"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/platform/kafka"
)

type Converter interface {
	RunSummaryToPayload(s *model.RunSummary) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewReportProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendRunCompleted(ctx context.Context, summary *model.RunSummary) error {
	payload, err := s.conv.RunSummaryToPayload(summary)
	if err != nil {
		return fmt.Errorf("converter run_summary_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(summary.RunID), payload,
		kafka.Header{Key: "content-type", Value: []byte(converter.ContentTypeJSON)},
		kafka.Header{Key: "trigger", Value: []byte(summary.Trigger)},
	); err != nil {
		return fmt.Errorf("producer to analysis.completed topic error: %w", err)
	}

	return nil
}
