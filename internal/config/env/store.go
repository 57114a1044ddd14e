package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type storeEnv struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"cimco-parts.db"`
}

type postgresEnv struct {
	Host          string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port          int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User          string `env:"POSTGRES_USER"`
	Password      string `env:"POSTGRES_PASSWORD"`
	DBName        string `env:"POSTGRES_DB" envDefault:"cimco"`
	SSLMode       string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MigrationsDir string `env:"MIGRATION_DIRECTORY" envDefault:"migrations"`
}

type store struct {
	raw storeEnv
	pg  postgresEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", raw.Driver)
	}

	var pg postgresEnv
	if err := env.Parse(&pg); err != nil {
		return nil, err
	}

	return &store{raw: raw, pg: pg}, nil
}

func (cfg *store) Driver() string     { return cfg.raw.Driver }
func (cfg *store) SQLitePath() string { return cfg.raw.SQLitePath }

func (cfg *store) MigrationDirectory() string {
	return cfg.pg.MigrationsDir
}

func (cfg *store) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.pg.User,
		cfg.pg.Password,
		cfg.pg.Host,
		cfg.pg.Port,
		cfg.pg.DBName,
		cfg.pg.SSLMode,
	)
}
