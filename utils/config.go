package utils

import (
	"encoding/json"
	"io/fs"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
)

// Config holds the configuration for the board
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	TickInterval   time.Duration `json:"tick_interval"`
	Topology       string        `json:"topology"`
	RandomDensity  float64       `json:"random_density"`
	CellSize       int           `json:"cell_size"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Headless       bool          `json:"headless"`
	MaxGenerations int           `json:"max_generations"`
}

// DefaultConfig returns a 25x25 clamped board stepping every 150ms
func DefaultConfig() Config {
	return Config{
		Width:          25,
		Height:         25,
		TickInterval:   150 * time.Millisecond,
		Topology:       "clamped",
		RandomDensity:  0.3,
		CellSize:       20,
		UseMemoryPool:  true,
		Headless:       false,
		MaxGenerations: 0,
	}
}

// LoadConfig loads configuration from JSON file over the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// LoadConfigOrDefault is LoadConfig, except that a missing file yields the
// defaults with found set to false
func LoadConfigOrDefault(filename string) (config Config, found bool, err error) {
	config, err = LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), false, nil
	}
	return config, true, err
}

// Validate checks that every field is usable
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.TickInterval <= 0:
		return errors.Errorf("[Validate] tick_interval must be positive, got %v", c.TickInterval)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	_, err := c.GetTopology()
	return err
}

// GetTopology returns the configured neighbor boundary policy
func (c Config) GetTopology() (model.Topology, error) {
	topology, err := model.ParseTopology(c.Topology)
	if err != nil {
		return topology, errors.Wrap(err, "[GetTopology] invalid topology")
	}
	return topology, nil
}
