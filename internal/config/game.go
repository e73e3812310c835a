package config

import "github.com/caarlos0/env/v11"

type GameConfig struct {
	// Seed pins the deck shuffle; 0 draws a fresh random seed.
	Seed        int64  `env:"SCOUNDREL_SEED" envDefault:"0"`
	Lang        string `env:"SCOUNDREL_LANG" envDefault:"en"`
	Color       bool   `env:"SCOUNDREL_COLOR" envDefault:"true"`
	ClearScreen bool   `env:"SCOUNDREL_CLEAR_SCREEN" envDefault:"true"`
}

func LoadGame() (GameConfig, error) {
	var cfg GameConfig
	err := env.Parse(&cfg)
	return cfg, err
}
