package tetris

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the geometry and timing policy of an Engine. The values are
// fixed for the lifetime of the engine.
type Config struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`

	// GravityInterval is the time between automatic downward steps.
	GravityInterval time.Duration `yaml:"gravity_interval"`
	// SoftDropInterval replaces GravityInterval while soft drop is held.
	SoftDropInterval time.Duration `yaml:"soft_drop_interval"`
	// ClearDuration is how long the board stays frozen with completed rows
	// visible before they are removed.
	ClearDuration time.Duration `yaml:"clear_duration"`

	// Kicks lists the horizontal offsets tried, in order, when a rotation
	// collides in place.
	Kicks []int `yaml:"kicks"`
}

// DefaultConfig returns the classic 10×20 setup.
func DefaultConfig() Config {
	return Config{
		Cols:             10,
		Rows:             20,
		GravityInterval:  800 * time.Millisecond,
		SoftDropInterval: 50 * time.Millisecond,
		ClearDuration:    500 * time.Millisecond,
		Kicks:            []int{0, -1, 1, -2, 2},
	}
}

// Validate checks that every piece fits the board and that all intervals are
// usable.
func (c Config) Validate() error {
	widest := 0
	for _, k := range Kinds() {
		widest = max(widest, baseShapes[k].Width(), baseShapes[k].Height())
	}
	switch {
	case c.Cols < widest:
		return fmt.Errorf("%w: cols %d is narrower than the widest piece (%d)", ErrInvalidConfig, c.Cols, widest)
	case c.Rows < widest:
		return fmt.Errorf("%w: rows %d is shorter than the tallest piece (%d)", ErrInvalidConfig, c.Rows, widest)
	case c.GravityInterval <= 0:
		return fmt.Errorf("%w: gravity interval must be positive, got %s", ErrInvalidConfig, c.GravityInterval)
	case c.SoftDropInterval <= 0:
		return fmt.Errorf("%w: soft drop interval must be positive, got %s", ErrInvalidConfig, c.SoftDropInterval)
	case c.ClearDuration < 0:
		return fmt.Errorf("%w: clear duration must not be negative, got %s", ErrInvalidConfig, c.ClearDuration)
	case len(c.Kicks) == 0:
		return fmt.Errorf("%w: at least one kick offset is required", ErrInvalidConfig)
	}
	return nil
}

// DropInterval returns the gravity interval in effect for the given soft
// drop mode.
func (c Config) DropInterval(softDrop bool) time.Duration {
	if softDrop {
		return c.SoftDropInterval
	}
	return c.GravityInterval
}
