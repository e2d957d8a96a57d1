package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// WorkerConfig holds everything the worker reads from its environment.
type WorkerConfig struct {
	DatabaseName string
	TableName    string

	// BaseURL of the eco2mixWeb endpoint, without query parameters.
	BaseURL string

	// Country dimension written with every record. Only "FR" is published by
	// the upstream today, but the parsing core never hardcodes it.
	Country string

	HTTPTimeout time.Duration
}

// LoadConfig reads configuration from the environment with defaults matching
// the production deployment. A .env file is honoured for local runs.
func LoadConfig() *WorkerConfig {
	_ = godotenv.Load()

	return &WorkerConfig{
		DatabaseName: getenvDefault("ENERGY_MIX_DATABASE", "energy-mix-database"),
		TableName:    getenvDefault("ENERGY_MIX_TABLE", "energy-mix-readings-1"),
		BaseURL:      getenvDefault("ECO2MIX_BASE_URL", "https://eco2mix.rte-france.com/curves/eco2mixWeb"),
		Country:      getenvDefault("ENERGY_MIX_COUNTRY", "FR"),
		HTTPTimeout:  getenvDuration("ECO2MIX_HTTP_TIMEOUT", 30*time.Second),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
