package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/cimco-parts/internal/config/env"
)

var cfg *config

type config struct {
	Server  Server
	Logger  Logger
	Store   Store
	Kafka   Kafka
	Redis   Redis
	Archive Archive
	Tracing Tracing
	Engine  Engine
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	storeCfg, err := envconfig.NewStoreConfig()
	if err != nil {
		return fmt.Errorf("%s Store: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	redisCfg, err := envconfig.NewRedisConfig()
	if err != nil {
		return fmt.Errorf("%s Redis: %w", op, err)
	}

	archiveCfg, err := envconfig.NewArchiveConfig()
	if err != nil {
		return fmt.Errorf("%s Archive: %w", op, err)
	}

	tracingCfg, err := envconfig.NewTracingConfig()
	if err != nil {
		return fmt.Errorf("%s Tracing: %w", op, err)
	}

	engineCfg, err := envconfig.NewEngineConfig()
	if err != nil {
		return fmt.Errorf("%s Engine: %w", op, err)
	}

	cfg = &config{
		Server:  serverCfg,
		Logger:  loggerCfg,
		Store:   storeCfg,
		Kafka:   kafkaCfg,
		Redis:   redisCfg,
		Archive: archiveCfg,
		Tracing: tracingCfg,
		Engine:  engineCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
