package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/you-humble/cimco-parts/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	Logger        Logger

	DSN string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ContainerName: "parts-postgres",
		ImageName:     "postgres:17.0-alpine3.20",
		Database:      "parts",
		Username:      "parts",
		Password:      "parts",
		Logger:        &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
