package config

import (
	"fmt"

	"go-bikeshare/internal/model"
)

// Config holds the settings shared by all commands
type Config struct {
	DataDir   string            `yaml:"dataDir"`
	Cities    map[string]string `yaml:"cities"` // city key -> dataset file
	DB        string            `yaml:"db"`
	Addr      string            `yaml:"addr"`
	ExportDir string            `yaml:"exportDir"`
	PageSize  int               `yaml:"pageSize"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   "data",
		DB:        "bikeshare.db",
		Addr:      "127.0.0.1:8080",
		ExportDir: "exports",
		PageSize:  5,
	}
}

// Sources returns the dataset file for every city, with entries from the
// config file taking precedence over the defaults
func (c *Config) Sources() map[string]string {
	sources := make(map[string]string, len(model.CityData))
	for k, v := range model.CityData {
		sources[k] = v
	}
	for k, v := range c.Cities {
		sources[model.Normalize(k)] = v
	}
	return sources
}

// Validate checks that city keys belong to the fixed set
func (c *Config) Validate() error {
	for city := range c.Cities {
		if !model.IsCity(city) {
			return fmt.Errorf("config: %w: %q", model.ErrUnknownCity, city)
		}
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("config: pageSize must be positive, got %d", c.PageSize)
	}
	return nil
}
