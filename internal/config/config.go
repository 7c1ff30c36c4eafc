// Package config содержит логику чтения конфигурации сервиса заправочной станции.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса заправочной станции.
type Config struct {
	RunAddress        string `env:"RUN_ADDRESS"`
	StationFile       string `env:"STATION_FILE"`
	SimulationWorkers int    `env:"SIMULATION_WORKERS"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envStationFile := cfg.StationFile
	envSimulationWorkers := cfg.SimulationWorkers

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.StationFile, "f", "", "path to YAML file with initial pumps and prices")
	flag.IntVar(&cfg.SimulationWorkers, "s", 0, "number of simulated buyers, 0 disables simulation")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envStationFile != "" {
		cfg.StationFile = envStationFile
	}
	if envSimulationWorkers != 0 {
		cfg.SimulationWorkers = envSimulationWorkers
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.SimulationWorkers < 0 {
		return nil, fmt.Errorf("simulation workers must be non-negative, got %d", cfg.SimulationWorkers)
	}

	return cfg, nil
}
