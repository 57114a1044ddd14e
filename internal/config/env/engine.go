package envconfig

import "github.com/caarlos0/env/v11"

type engineEnv struct {
	Workers       int      `env:"ENGINE_WORKERS" envDefault:"4"`
	MaxFindings   int      `env:"ENGINE_MAX_FINDINGS" envDefault:"5"`
	BrandMarkers  []string `env:"ENGINE_BRAND_MARKERS" envDefault:"DODGE,TOSHIBA"`
	SpareCategory string   `env:"ENGINE_SPARE_CATEGORY" envDefault:"Warehouse Spares"`
	SpareLocation string   `env:"ENGINE_SPARE_LOCATION" envDefault:"Shelf A"`
	WearCacheSize int      `env:"ENGINE_WEAR_CACHE_SIZE" envDefault:"4096"`
}

type engine struct {
	raw engineEnv
}

func NewEngineConfig() (*engine, error) {
	var raw engineEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &engine{raw: raw}, nil
}

func (cfg *engine) Workers() int           { return cfg.raw.Workers }
func (cfg *engine) MaxFindings() int       { return cfg.raw.MaxFindings }
func (cfg *engine) BrandMarkers() []string { return cfg.raw.BrandMarkers }
func (cfg *engine) SpareCategory() string  { return cfg.raw.SpareCategory }
func (cfg *engine) SpareLocation() string  { return cfg.raw.SpareLocation }
func (cfg *engine) WearCacheSize() int     { return cfg.raw.WearCacheSize }
