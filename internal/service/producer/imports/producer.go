package importsproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/cimco-parts/internal/converter"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/platform/kafka"
)

type Converter interface {
	PartsImportedToPayload(event model.PartsImported) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewImportsProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendPartsImported(ctx context.Context, event model.PartsImported) error {
	payload, err := s.conv.PartsImportedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter parts_imported_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.ImportID), payload,
		kafka.Header{Key: "content-type", Value: []byte(converter.ContentTypeJSON)},
	); err != nil {
		return fmt.Errorf("producer to parts.imported topic error: %w", err)
	}

	return nil
}
