package reportproducer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/internal/converter"
	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/platform/kafka"
)

type sent struct {
	key, value []byte
	headers    []kafka.Header
}

type recordingProducer struct {
	out []sent
	err error
}

func (p *recordingProducer) Send(_ context.Context, key, value []byte, headers ...kafka.Header) error {
	if p.err != nil {
		return p.err
	}
	p.out = append(p.out, sent{key: key, value: value, headers: headers})
	return nil
}

func TestSendRunCompleted(t *testing.T) {
	t.Parallel()

	p := &recordingProducer{}
	svc := NewReportProducer(p, converter.NewKafkaConverter())

	summary := &model.RunSummary{RunID: "run-42", Trigger: "http", SparesCreated: 1}
	require.NoError(t, svc.SendRunCompleted(context.Background(), summary))

	require.Len(t, p.out, 1)
	assert.Equal(t, "run-42", string(p.out[0].key))
	assert.Contains(t, p.out[0].headers, kafka.Header{Key: "content-type", Value: []byte(converter.ContentTypeJSON)})

	var got model.RunSummary
	require.NoError(t, json.Unmarshal(p.out[0].value, &got))
	assert.Equal(t, 1, got.SparesCreated)
}

func TestSendRunCompletedProducerError(t *testing.T) {
	t.Parallel()

	errBroker := errors.New("broker unreachable")
	svc := NewReportProducer(&recordingProducer{err: errBroker}, converter.NewKafkaConverter())

	err := svc.SendRunCompleted(context.Background(), &model.RunSummary{RunID: "r"})
	assert.ErrorIs(t, err, errBroker)
}
