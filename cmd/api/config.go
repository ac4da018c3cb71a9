package main

import (
	"github.com/caarlos0/env/v11"

	"github.com/shielddb/shield/core"
)

func loadConfig() (core.Config, error) {
	var config core.Config
	if err := env.Parse(&config); err != nil {
		return core.Config{}, err
	}
	return config, nil
}
