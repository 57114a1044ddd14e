package envconfig

import "github.com/caarlos0/env/v11"

type archiveEnv struct {
	Endpoint  string `env:"ARCHIVE_ENDPOINT"`
	Region    string `env:"ARCHIVE_REGION" envDefault:"us-east-1"`
	AccessKey string `env:"ARCHIVE_ACCESS_KEY"`
	SecretKey string `env:"ARCHIVE_SECRET_KEY"`
	Bucket    string `env:"ARCHIVE_BUCKET" envDefault:"cimco-analysis-runs"`
	UseSSL    bool   `env:"ARCHIVE_USE_SSL" envDefault:"false"`
}

type archive struct {
	raw archiveEnv
}

func NewArchiveConfig() (*archive, error) {
	var raw archiveEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &archive{raw: raw}, nil
}

func (cfg *archive) Enabled() bool     { return cfg.raw.Endpoint != "" }
func (cfg *archive) Endpoint() string  { return cfg.raw.Endpoint }
func (cfg *archive) Region() string    { return cfg.raw.Region }
func (cfg *archive) AccessKey() string { return cfg.raw.AccessKey }
func (cfg *archive) SecretKey() string { return cfg.raw.SecretKey }
func (cfg *archive) Bucket() string    { return cfg.raw.Bucket }
func (cfg *archive) UseSSL() bool      { return cfg.raw.UseSSL }
