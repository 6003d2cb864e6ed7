// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"slcsp/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Files contains the input file layout
	Files FilesConfig `json:"files"`

	// Rating contains rating configuration
	Rating RatingConfig `json:"rating"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// FilesConfig names the three CSV files inside the data directory.
// The request file doubles as the output file: results overwrite it.
type FilesConfig struct {
	// Request is the ordered zip-code request list (and the output)
	Request string `json:"request"`

	// Plans is the plan catalog file
	Plans string `json:"plans"`

	// Zips is the zip-to-rate-area mapping file
	Zips string `json:"zips"`
}

// RatingConfig contains rating-related settings
type RatingConfig struct {
	// MetalLevel is the plan tier considered when ranking premiums.
	// Matching is case-sensitive and exact.
	MetalLevel string `json:"metal_level"`

	// PremiumScale is the number of fractional digits premium values
	// are normalized to for comparison and output.
	PremiumScale int `json:"premium_scale"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Files: FilesConfig{
			Request: "slcsp.csv",
			Plans:   "plans.csv",
			Zips:    "zips.csv",
		},
		Rating: RatingConfig{
			MetalLevel:   "Silver",
			PremiumScale: 2,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A .env file next to the
// process, if present, is applied first so file contents can reference
// the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
