package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Config describes the well and how blocks are spawned into it.
type Config struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`

	SpawnX    int `yaml:"spawn_x"`
	SpawnY    int `yaml:"spawn_y"`
	SpawnSize int `yaml:"spawn_size"`

	// Colors is the number of tile colors a spawned block may take. Colors
	// are numbered from 1.
	Colors int `yaml:"colors"`

	TickMillis int `yaml:"tick_ms"`

	// Seed drives block shapes and colors. Zero picks a seed from the clock.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the classic 20x10 well with 3x3 blocks spawned at
// column 3 and one automatic drop per second.
func DefaultConfig() Config {
	return Config{
		Height:     20,
		Width:      10,
		SpawnX:     3,
		SpawnY:     0,
		SpawnSize:  3,
		Colors:     9,
		TickMillis: 1000,
	}
}

// TickPeriod returns the automatic drop interval.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Validate reports the first impossible setting.
func (c Config) Validate() error {
	switch {
	case c.Height < 1 || c.Width < 1:
		return fmt.Errorf("session: well must be at least 1x1, got %dx%d", c.Height, c.Width)
	case c.SpawnSize < 1:
		return fmt.Errorf("session: spawn size must be positive, got %d", c.SpawnSize)
	case c.SpawnX < 0 || c.SpawnY < 0:
		return fmt.Errorf("session: spawn origin (%d, %d) is negative", c.SpawnX, c.SpawnY)
	case c.Colors < 1 || c.Colors > 9:
		return fmt.Errorf("session: colors must be between 1 and 9, got %d", c.Colors)
	case c.TickMillis < 1:
		return errors.New("session: tick_ms must be positive")
	}
	return c.checkSpawn(c.Height, c.Width)
}

func (c Config) checkSpawn(height, width int) error {
	if c.SpawnX+c.SpawnSize > width || c.SpawnY+c.SpawnSize > height {
		return fmt.Errorf("session: %dx%d spawn at (%d, %d) does not fit a %dx%d well",
			c.SpawnSize, c.SpawnSize, c.SpawnX, c.SpawnY, height, width)
	}
	return nil
}

// ParseConfig decodes a YAML document over DefaultConfig, so omitted keys
// keep their defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("session: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("session: %w", err)
	}
	return ParseConfig(data)
}
