package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// TrainerConfig holds the trainer's persistent settings. Command-line
// flags override whatever was loaded from the file.
type TrainerConfig struct {
	OutputPath  string `json:"output_path"`
	MinFreq     int    `json:"min_freq"`
	LogLevel    string `json:"log_level"`
	StoreDBPath string `json:"store_db_path"`
}

// DefaultTrainerConfig creates a trainer configuration with default values.
func DefaultTrainerConfig() *TrainerConfig {
	return &TrainerConfig{
		OutputPath:  "ngram_model.json",
		MinFreq:     5,
		LogLevel:    "info",
		StoreDBPath: "",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*TrainerConfig, error) {
	config := DefaultTrainerConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the trainer can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
