package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	envconfig "github.com/you-humble/cimco-parts/internal/config/env"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_DRIVER", envconfig.DriverSQLite)

	require.NoError(t, Load())

	c := C()
	assert.Equal(t, "0.0.0.0:8080", c.Server.Address())
	assert.Equal(t, 30*time.Second, c.Server.DBReadTimeout())
	assert.Equal(t, envconfig.DriverSQLite, c.Store.Driver())
	assert.False(t, c.Kafka.Enabled())
	assert.False(t, c.Redis.Enabled())
	assert.False(t, c.Archive.Enabled())
	assert.Equal(t, []string{"DODGE", "TOSHIBA"}, c.Engine.BrandMarkers())
	assert.Equal(t, "Shelf A", c.Engine.SpareLocation())
	assert.Equal(t, "none", c.Tracing.Exporter())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_DRIVER", envconfig.DriverPostgres)
	t.Setenv("POSTGRES_USER", "cimco")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("ENGINE_WORKERS", "8")

	require.NoError(t, Load())

	c := C()
	assert.Equal(t, "postgres://cimco:secret@db:5432/cimco?sslmode=disable", c.Store.DSN())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers())
	assert.True(t, c.Kafka.ProducerConfig().Producer.Return.Successes)
	assert.True(t, c.Redis.Enabled())
	assert.Equal(t, 8, c.Engine.Workers())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_DRIVER", "oracle")

	assert.Error(t, Load())
}
