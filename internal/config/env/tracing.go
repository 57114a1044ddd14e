package envconfig

import "github.com/caarlos0/env/v11"

type tracingEnv struct {
	ServiceName  string  `env:"OTEL_SERVICE_NAME" envDefault:"cimco-parts"`
	Environment  string  `env:"APP_ENV" envDefault:"production"`
	Exporter     string  `env:"TRACING_EXPORTER" envDefault:"none"`
	OTLPEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	Insecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	SampleRatio  float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1"`
}

type tracing struct {
	raw tracingEnv
}

func NewTracingConfig() (*tracing, error) {
	var raw tracingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &tracing{raw: raw}, nil
}

func (cfg *tracing) ServiceName() string  { return cfg.raw.ServiceName }
func (cfg *tracing) Environment() string  { return cfg.raw.Environment }
func (cfg *tracing) Exporter() string     { return cfg.raw.Exporter }
func (cfg *tracing) OTLPEndpoint() string { return cfg.raw.OTLPEndpoint }
func (cfg *tracing) Insecure() bool       { return cfg.raw.Insecure }
func (cfg *tracing) SampleRatio() float64 { return cfg.raw.SampleRatio }
