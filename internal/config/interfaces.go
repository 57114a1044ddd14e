package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Store interface {
	Driver() string
	SQLitePath() string
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	PartsImportedTopic() string
	PartsImportedConsumerGroupID() string
	RunCompletedTopic() string
	PartsImportedConsumerConfig() *sarama.Config
	ProducerConfig() *sarama.Config
}

type Redis interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
	LockKey() string
	LockTTL() time.Duration
	DialTimeout() time.Duration
}

type Archive interface {
	Enabled() bool
	Endpoint() string
	Region() string
	AccessKey() string
	SecretKey() string
	Bucket() string
	UseSSL() bool
}

type Tracing interface {
	ServiceName() string
	Environment() string
	Exporter() string
	OTLPEndpoint() string
	Insecure() bool
	SampleRatio() float64
}

type Engine interface {
	Workers() int
	MaxFindings() int
	BrandMarkers() []string
	SpareCategory() string
	SpareLocation() string
	WearCacheSize() int
}
