package config

import "github.com/caarlos0/env/v11"

// LogConfig drives the zerolog setup. The terminal belongs to the game, so
// the default level is warn and File, when set, takes the logs off stderr.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"warn"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	File        string `env:"LOG_FILE"`
	MaxMB       int    `env:"LOG_MAX_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}
