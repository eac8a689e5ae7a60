package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"
)

// Config holds the tunables of the coefficient search.
type Config struct {
	// Workers caps the number of parallel evaluation tasks.
	Workers int `yaml:"workers"`
	// ChunkSize is the number of candidate vectors evaluated per task.
	ChunkSize int `yaml:"chunkSize"`
}

// Default sizes the worker pool to a small multiple of the detected
// hardware concurrency.
func Default() Config {
	return Config{
		Workers:   2 * runtime.NumCPU(),
		ChunkSize: 64,
	}
}

// Load reads a YAML config file. Keys left unset keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file (%s): %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file (%s): %w", path, err)
	}
	if cfg.Workers <= 0 {
		return Config{}, fmt.Errorf("invalid workers value (%d) in config file (%s)", cfg.Workers, path)
	}
	if cfg.ChunkSize <= 0 {
		return Config{}, fmt.Errorf("invalid chunkSize value (%d) in config file (%s)", cfg.ChunkSize, path)
	}
	return cfg, nil
}
