package converter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/you-humble/cimco-parts/internal/model"
)

const ContentTypeJSON = "application/json"

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) PartsImportedToModel(data []byte) (model.PartsImported, error) {
	var event model.PartsImported
	if err := json.Unmarshal(data, &event); err != nil {
		return model.PartsImported{}, fmt.Errorf("failed to unmarshal parts imported: %w", err)
	}

	if strings.TrimSpace(event.ImportID) == "" {
		return model.PartsImported{}, fmt.Errorf("%w: empty import_id", model.ErrInvalidArgument)
	}
	if event.RecordCount < 0 {
		return model.PartsImported{}, fmt.Errorf("%w: record_count %d", model.ErrInvalidArgument, event.RecordCount)
	}

	return event, nil
}

func (c *kafkaConverter) PartsImportedToPayload(event model.PartsImported) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parts imported: %w", err)
	}
	return payload, nil
}

func (c *kafkaConverter) RunSummaryToPayload(s *model.RunSummary) ([]byte, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run summary: %w", err)
	}
	return payload, nil
}
