package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/cimco-parts/platform/kafka"
	"github.com/you-humble/cimco-parts/platform/logger"
)

func TestProducerSend(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true

	sp := mocks.NewSyncProducer(t, cfg)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"run_id":"r1"}` {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := NewProducer(sp, "parts.analysis.completed", logger.NoopLogger{})
	err := p.Send(context.Background(), []byte("r1"), []byte(`{"run_id":"r1"}`),
		kafka.Header{Key: "content-type", Value: []byte("application/json")},
	)
	require.NoError(t, err)
	require.NoError(t, sp.Close())
}

func TestProducerSendError(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true

	sp := mocks.NewSyncProducer(t, cfg)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducer(sp, "parts.analysis.completed", logger.NoopLogger{})
	err := p.Send(context.Background(), []byte("r1"), []byte("{}"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, sp.Close())
}
