package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                      []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PartsImportedTopicName       string   `env:"PARTS_IMPORTED_TOPIC_NAME" envDefault:"parts.imported"`
	PartsImportedConsumerGroupID string   `env:"PARTS_IMPORTED_CONSUMER_GROUP_ID" envDefault:"cimco-parts-analysis"`
	RunCompletedTopicName        string   `env:"RUN_COMPLETED_TOPIC_NAME" envDefault:"parts.analysis.completed"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool                        { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string                    { return cfg.raw.Brokers }
func (cfg *kafka) PartsImportedTopic() string           { return cfg.raw.PartsImportedTopicName }
func (cfg *kafka) PartsImportedConsumerGroupID() string { return cfg.raw.PartsImportedConsumerGroupID }
func (cfg *kafka) RunCompletedTopic() string            { return cfg.raw.RunCompletedTopicName }

func (cfg *kafka) PartsImportedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
