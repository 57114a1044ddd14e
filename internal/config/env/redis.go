package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type redisEnv struct {
	Addr        string        `env:"REDIS_ADDR"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	LockKey     string        `env:"RUN_LOCK_KEY" envDefault:"cimco-parts:analysis:run"`
	LockTTL     time.Duration `env:"RUN_LOCK_TTL" envDefault:"15m"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

// Enabled reports whether a cross-process run lock is configured.
func (cfg *redis) Enabled() bool              { return cfg.raw.Addr != "" }
func (cfg *redis) Addr() string               { return cfg.raw.Addr }
func (cfg *redis) Password() string           { return cfg.raw.Password }
func (cfg *redis) DB() int                    { return cfg.raw.DB }
func (cfg *redis) LockKey() string            { return cfg.raw.LockKey }
func (cfg *redis) LockTTL() time.Duration     { return cfg.raw.LockTTL }
func (cfg *redis) DialTimeout() time.Duration { return cfg.raw.DialTimeout }
