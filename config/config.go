// Package config loads the YAML settings shared by the blockfall binaries.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/tetris"
)

// File is the on-disk configuration. Every section is optional; missing
// keys keep their defaults.
type File struct {
	Engine tetris.Config `yaml:"engine"`
	// Seed fixes the random sources. Zero picks a seed at startup.
	Seed uint64 `yaml:"seed"`
	// Randomizer selects the piece sequence: "uniform" or "bag".
	Randomizer string `yaml:"randomizer"`

	Assets  Assets  `yaml:"assets"`
	Window  Window  `yaml:"window"`
	Audio   Audio   `yaml:"audio"`
	Quotes  Quotes  `yaml:"quotes"`
	Effects Effects `yaml:"effects"`
}

type Assets struct {
	Dir string `yaml:"dir"`
}

type Window struct {
	Title    string  `yaml:"title"`
	CellSize int     `yaml:"cell_size"`
	Scale    float64 `yaml:"scale"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Quotes struct {
	Enabled  bool          `yaml:"enabled"`
	Duration time.Duration `yaml:"duration"`
	// Tiers overrides the stock lines for one, two, three and four or more
	// cleared lines. Empty or missing tiers keep the stock lines.
	Tiers [][]string `yaml:"tiers,omitempty"`
}

// Table returns Tiers as a fixed four-tier table; extra tiers are ignored.
func (q Quotes) Table() [4][]string {
	var table [4][]string
	for i := range min(len(q.Tiers), len(table)) {
		table[i] = q.Tiers[i]
	}
	return table
}

type Effects struct {
	Particles bool `yaml:"particles"`
	Ghost     bool `yaml:"ghost"`
}

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Default returns the settings used when no file is present.
func Default() File {
	return File{
		Engine:     tetris.DefaultConfig(),
		Randomizer: RandomizerUniform,
		Assets:     Assets{Dir: "images"},
		Window: Window{
			Title:    "blockfall",
			CellSize: 30,
			Scale:    1,
		},
		Audio:   Audio{Enabled: true, Volume: 0.5},
		Quotes:  Quotes{Enabled: true, Duration: 1500 * time.Millisecond},
		Effects: Effects{Particles: true, Ghost: true},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (File, error) {
	f := Default()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path as YAML.
func (f File) Save(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks the engine section and the frontend settings.
func (f File) Validate() error {
	if err := f.Engine.Validate(); err != nil {
		return err
	}
	switch {
	case f.Randomizer != RandomizerUniform && f.Randomizer != RandomizerBag:
		return fmt.Errorf("%w: unknown randomizer %q", tetris.ErrInvalidConfig, f.Randomizer)
	case f.Window.CellSize <= 0:
		return fmt.Errorf("%w: window cell size must be positive", tetris.ErrInvalidConfig)
	case f.Window.Scale <= 0:
		return fmt.Errorf("%w: window scale must be positive", tetris.ErrInvalidConfig)
	case f.Audio.Volume < 0 || f.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume must be within [0, 1]", tetris.ErrInvalidConfig)
	case f.Quotes.Duration < 0:
		return fmt.Errorf("%w: quote duration must not be negative", tetris.ErrInvalidConfig)
	}
	return nil
}

// NewFactory builds the engine's piece factory from the randomizer setting,
// seed and tag pool.
func (f File) NewFactory(seed uint64, tags tetris.TagPool) *tetris.Factory {
	var kinds tetris.Randomizer
	if f.Randomizer == RandomizerBag {
		kinds = tetris.NewBagRandomizer(seed)
	} else {
		kinds = tetris.NewUniformRandomizer(seed)
	}
	return &tetris.Factory{Kinds: kinds, Tags: tags}
}
