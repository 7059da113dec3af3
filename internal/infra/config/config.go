package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	DurationToleranceSec float64 `env:"MDC_DURATION_TOLERANCE_SEC" envDefault:"0.5"`
	FPSTolerance         float64 `env:"MDC_FPS_TOLERANCE"          envDefault:"0.1"`
	FFprobeTimeoutSec    int     `env:"MDC_FFPROBE_TIMEOUT_SEC"    envDefault:"10"`

	LogDir   string `env:"MDC_LOG_DIR"   envDefault:"."`
	LogLevel string `env:"MDC_LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
