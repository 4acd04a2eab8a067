// Package config loads engine tuning parameters from a TOML file.
// Programmatic construction of EngineConfig via a struct literal remains
// the primary way to configure the engine; loading from a file is an
// additive convenience for drivers.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/corvane/fairyengine/internal/board"
)

// EngineConfig holds the driver-supplied engine parameters: search depth,
// worker count, transposition table size, and starting variant.
type EngineConfig struct {
	// SearchDepth is the root iterative-deepening target, accepted range
	// [1, 10].
	SearchDepth int `toml:"search_depth"`

	// WorkerCount is the number of Lazy-SMP workers; 0 or negative means
	// use the available hardware parallelism.
	WorkerCount int `toml:"worker_count"`

	// TranspositionTableSize is the number of slots in the shared
	// transposition table.
	TranspositionTableSize int `toml:"tt_size"`

	// Variant selects the starting position layout passed to
	// board.NewPosition.
	Variant string `toml:"variant"`
}

// Default returns the stock configuration: depth 6, hardware-parallelism
// worker count, and a 2,000,000-slot table.
func Default() EngineConfig {
	return EngineConfig{
		SearchDepth:            6,
		WorkerCount:            0,
		TranspositionTableSize: 2_000_000,
		Variant:                "classic",
	}
}

// Load reads an EngineConfig from a TOML file at path, starting from
// Default() so a partial file only overrides the fields it names.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}

// Validate checks SearchDepth lies in [1, 10] and Variant names a known
// variant.
func (c EngineConfig) Validate() error {
	if c.SearchDepth < 1 || c.SearchDepth > 10 {
		return fmt.Errorf("config: search_depth %d out of range [1, 10]", c.SearchDepth)
	}
	if _, err := c.BoardVariant(); err != nil {
		return err
	}
	return nil
}

// BoardVariant parses the Variant string into a board.Variant.
func (c EngineConfig) BoardVariant() (board.Variant, error) {
	switch c.Variant {
	case "", "classic":
		return board.Classic, nil
	case "fairy", "fairychess":
		return board.FairyChess, nil
	default:
		return board.Classic, fmt.Errorf("config: unknown variant %q", c.Variant)
	}
}
