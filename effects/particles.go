package effects

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Particle is one spark of a line-clear burst, in pixel space.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    time.Duration
	Life   time.Duration
}

// BurstConfig tunes the line-clear burst.
type BurstConfig struct {
	PerCell  int
	MinSpeed float64 // px/s
	MaxSpeed float64 // px/s
	Lift     float64 // px/s added upwards at spawn
	MinLife  time.Duration
	MaxLife  time.Duration
	Gravity  float64 // px/s²
	MaxStep  time.Duration
	// Fade is the span over which alpha goes from 1 to 0.
	Fade time.Duration
}

// DefaultBurstConfig returns the stock burst tuning.
func DefaultBurstConfig() BurstConfig {
	return BurstConfig{
		PerCell:  10,
		MinSpeed: 40,
		MaxSpeed: 160,
		Lift:     50,
		MinLife:  300 * time.Millisecond,
		MaxLife:  600 * time.Millisecond,
		Gravity:  400,
		MaxStep:  64 * time.Millisecond,
		Fade:     500 * time.Millisecond,
	}
}

// Burst is the particle field shown while cleared rows flash. It is purely
// cosmetic and never touches engine state.
type Burst struct {
	cfg       BurstConfig
	rng       *rand.Rand
	particles []Particle

	last   time.Duration
	primed bool
}

// NewBurst creates an empty burst with a deterministic random source.
func NewBurst(seed uint64, cfg BurstConfig) *Burst {
	return &Burst{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x5bd1e995)),
	}
}

// Spawn replaces the current particles with sparks from every filled cell
// of the given rows. cellSize converts board cells to pixels.
func (b *Burst) Spawn(board tetris.BoardSnapshot, rows []int, cellSize float64) {
	b.particles = b.particles[:0]
	b.primed = false
	for _, y := range rows {
		for x := range board.Cols {
			if !board.At(x, y).Filled {
				continue
			}
			cx := float64(x)*cellSize + cellSize/2
			cy := float64(y)*cellSize + cellSize/2
			for range b.cfg.PerCell {
				b.particles = append(b.particles, b.spark(cx, cy))
			}
		}
	}
}

func (b *Burst) spark(x, y float64) Particle {
	angle := b.rng.Float64() * 2 * math.Pi
	speed := b.cfg.MinSpeed + b.rng.Float64()*(b.cfg.MaxSpeed-b.cfg.MinSpeed)
	life := b.cfg.MinLife
	if span := b.cfg.MaxLife - b.cfg.MinLife; span > 0 {
		life += time.Duration(b.rng.Int64N(int64(span)))
	}
	return Particle{
		X:    x,
		Y:    y,
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle)*speed - b.cfg.Lift,
		Life: life,
	}
}

// Update advances the particles to timestamp now. The first update after a
// spawn only records the timestamp; later steps are clamped to MaxStep.
func (b *Burst) Update(now time.Duration) {
	if !b.primed {
		b.last = now
		b.primed = true
		return
	}
	dt := now - b.last
	if dt < 0 {
		dt = 0
	}
	b.last = max(b.last, now)
	dt = min(dt, b.cfg.MaxStep)
	sec := dt.Seconds()

	alive := b.particles[:0]
	for _, p := range b.particles {
		p.VY += b.cfg.Gravity * sec
		p.X += p.VX * sec
		p.Y += p.VY * sec
		p.Age += dt
		if p.Age < p.Life {
			alive = append(alive, p)
		}
	}
	b.particles = alive
}

// Execute lets a Burst run as a scheduler stage.
func (b *Burst) Execute(frame *loop.Frame) {
	if b.Active() {
		b.Update(frame.Now)
	}
}

// Clear drops all particles.
func (b *Burst) Clear() {
	b.particles = b.particles[:0]
	b.primed = false
}

// Active reports whether any particle is alive.
func (b *Burst) Active() bool {
	return len(b.particles) > 0
}

// Particles returns the live particles. The slice is reused by the next
// Update or Spawn.
func (b *Burst) Particles() []Particle {
	return b.particles
}

// Alpha returns the opacity of p in [0, 1].
func (b *Burst) Alpha(p Particle) float64 {
	if b.cfg.Fade <= 0 {
		return 1
	}
	return max(0, 1-float64(p.Age)/float64(b.cfg.Fade))
}

// Size returns the drawn edge length of p in pixels; sparks grow as they
// fade.
func (b *Burst) Size(p Particle) float64 {
	return 2 + (1-b.Alpha(p))*3
}
