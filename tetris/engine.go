package tetris

import (
	"fmt"
	"slices"
	"time"
)

// State is the top-level phase of an Engine.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateClearing
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StateClearing:
		return "Clearing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Stats counts what happened in the current session.
type Stats struct {
	PiecesSpawned int
	PiecesLocked  int
	LinesCleared  int
	Clears        int
}

// Engine owns the board and the falling pieces of one game session and
// advances them in response to commands and Tick calls.
//
// An Engine is driven from a single control loop and is not safe for
// concurrent use. Timestamps passed to Tick are monotonic offsets from any
// fixed origin; commands that need a time (locking into a clear phase) use
// the most recent timestamp seen by Tick. A clear phase started by a
// command between ticks therefore ends up to one frame earlier than
// ClearDuration after the command itself.
type Engine struct {
	cfg     Config
	factory PieceFactory
	board   *Board

	state    State
	current  *Piece
	next     *Piece
	softDrop bool

	now      time.Duration
	lastDrop time.Duration
	anchored bool

	clearRows     []int
	clearDeadline time.Duration

	stats Stats

	linesClearedHandlers []func(count int, rows []int)
	gameOverHandlers     []func()
	lockHandlers         []func(p Piece)
	pending              []func()
}

// NewEngine creates an engine in the NotStarted state.
func NewEngine(cfg Config, factory PieceFactory) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: a piece factory is required", ErrInvalidConfig)
	}
	cfg.Kicks = slices.Clone(cfg.Kicks)
	return &Engine{
		cfg:     cfg,
		factory: factory,
		board:   NewBoard(cfg.Cols, cfg.Rows),
	}, nil
}

// OnLinesCleared registers fn to run once for every clear phase, with the
// number of completed rows and their indices.
func (e *Engine) OnLinesCleared(fn func(count int, rows []int)) {
	e.linesClearedHandlers = append(e.linesClearedHandlers, fn)
}

// OnGameOver registers fn to run when the engine enters GameOver.
func (e *Engine) OnGameOver(fn func()) {
	e.gameOverHandlers = append(e.gameOverHandlers, fn)
}

// OnLock registers fn to run after a piece has been written into the board.
func (e *Engine) OnLock(fn func(p Piece)) {
	e.lockHandlers = append(e.lockHandlers, fn)
}

// Start begins a new session, discarding any previous one. The previewed
// next piece, if any, becomes the first piece.
func (e *Engine) Start() {
	e.board.Reset()
	e.state = StateRunning
	e.softDrop = false
	e.current = nil
	e.clearRows = nil
	e.stats = Stats{}
	Logger().Debug("session started", "cols", e.cfg.Cols, "rows", e.cfg.Rows)

	e.promoteNext()
	// The first Tick after a start only sets the gravity reference point.
	e.anchored = false
	e.flush()
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Kicks = slices.Clone(e.cfg.Kicks)
	return cfg
}

// Now returns the latest timestamp observed by Tick.
func (e *Engine) Now() time.Duration {
	return e.now
}

// Stats returns the session counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Board returns a copy of the locked cells.
func (e *Engine) Board() BoardSnapshot {
	return e.board.Snapshot()
}

// Current returns a copy of the falling piece, if there is one.
func (e *Engine) Current() (Piece, bool) {
	if e.current == nil {
		return Piece{}, false
	}
	return e.current.Clone(), true
}

// Next returns a copy of the previewed piece, if there is one.
func (e *Engine) Next() (Piece, bool) {
	if e.next == nil {
		return Piece{}, false
	}
	return e.next.Clone(), true
}

// Ghost returns the falling piece moved to the row where a hard drop would
// land it.
func (e *Engine) Ghost() (Piece, bool) {
	if e.current == nil {
		return Piece{}, false
	}
	ghost := e.current.Clone()
	ghost.Y += e.dropDistance()
	return ghost, true
}

// Clearing returns the rows waiting to be removed and the timestamp at which
// they will be. ok is false outside the Clearing state.
func (e *Engine) Clearing() (rows []int, deadline time.Duration, ok bool) {
	if e.state != StateClearing {
		return nil, 0, false
	}
	return slices.Clone(e.clearRows), e.clearDeadline, true
}

// SoftDrop reports whether soft drop mode is active.
func (e *Engine) SoftDrop() bool {
	return e.softDrop
}

// SetSoftDrop switches between the soft drop and normal gravity intervals.
func (e *Engine) SetSoftDrop(active bool) {
	e.softDrop = active
}

// Due returns the timestamp of the next automatic transition: the next
// gravity step while running or the clear deadline while clearing.
func (e *Engine) Due() (time.Duration, bool) {
	switch e.state {
	case StateRunning:
		if !e.anchored {
			return e.now, true
		}
		return e.lastDrop + e.cfg.DropInterval(e.softDrop), true
	case StateClearing:
		return e.clearDeadline, true
	default:
		return 0, false
	}
}

// MoveHorizontal shifts the falling piece one column left (dx < 0) or right
// (dx > 0). It reports whether the piece moved.
func (e *Engine) MoveHorizontal(dx int) bool {
	if !e.canControl() || dx == 0 {
		return false
	}
	if dx < 0 {
		dx = -1
	} else {
		dx = 1
	}
	p := e.current
	if e.board.Collides(p.Shape, p.X+dx, p.Y) {
		return false
	}
	p.X += dx
	return true
}

// MoveDown moves the falling piece one row down. If the piece cannot
// descend it is locked instead and MoveDown reports false.
func (e *Engine) MoveDown() bool {
	if !e.canControl() {
		return false
	}
	moved := e.stepDown()
	e.flush()
	return moved
}

// HardDrop moves the falling piece straight to its landing row and locks it.
// It returns the number of rows travelled.
func (e *Engine) HardDrop() int {
	if !e.canControl() {
		return 0
	}
	dist := e.dropDistance()
	e.current.Y += dist
	e.lock()
	e.flush()
	return dist
}

// Rotate turns the falling piece clockwise, trying each configured kick
// offset in order. It reports whether the rotation was applied.
func (e *Engine) Rotate() bool {
	if !e.canControl() {
		return false
	}
	p := e.current
	rotated := p.Shape.RotateClockwise()
	for _, kick := range e.cfg.Kicks {
		if !e.board.Collides(rotated, p.X+kick, p.Y) {
			p.Shape = rotated
			p.X += kick
			return true
		}
	}
	return false
}

// Tick advances time to now. Timestamps that do not move forward are
// treated as no elapsed time.
func (e *Engine) Tick(now time.Duration) {
	if now > e.now {
		e.now = now
	}

	switch e.state {
	case StateClearing:
		if e.now >= e.clearDeadline {
			e.finishClear()
		}
	case StateRunning:
		if !e.anchored {
			e.lastDrop = e.now
			e.anchored = true
			return
		}
		if e.now-e.lastDrop >= e.cfg.DropInterval(e.softDrop) {
			e.lastDrop = e.now
			e.stepDown()
		}
	}
	e.flush()
}

func (e *Engine) canControl() bool {
	return e.state == StateRunning && e.current != nil
}

func (e *Engine) stepDown() bool {
	p := e.current
	if !e.board.Collides(p.Shape, p.X, p.Y+1) {
		p.Y++
		return true
	}
	e.lock()
	return false
}

func (e *Engine) dropDistance() int {
	p := e.current
	dist := 0
	for !e.board.Collides(p.Shape, p.X, p.Y+dist+1) {
		dist++
	}
	return dist
}

func (e *Engine) lock() {
	p := *e.current
	e.board.Lock(p.Shape, p.X, p.Y, p.Tag)
	e.current = nil
	e.stats.PiecesLocked++
	Logger().Debug("piece locked", "kind", p.Kind, "x", p.X, "y", p.Y)

	for _, fn := range e.lockHandlers {
		locked := p.Clone()
		e.pending = append(e.pending, func() { fn(locked) })
	}

	rows := e.board.FullRows()
	if len(rows) == 0 {
		e.promoteNext()
		return
	}

	e.state = StateClearing
	e.clearRows = rows
	e.clearDeadline = e.now + e.cfg.ClearDuration
	e.stats.LinesCleared += len(rows)
	e.stats.Clears++
	Logger().Debug("clear phase started", "rows", rows, "deadline", e.clearDeadline)

	for _, fn := range e.linesClearedHandlers {
		rows := slices.Clone(rows)
		e.pending = append(e.pending, func() { fn(len(rows), rows) })
	}
}

func (e *Engine) finishClear() {
	e.board.ClearRows(e.clearRows)
	Logger().Debug("clear phase finished", "rows", e.clearRows)
	e.clearRows = nil
	e.state = StateRunning
	e.promoteNext()
}

// promoteNext makes the previewed piece current, previews a fresh one, and
// ends the game if the new current piece has no room at its spawn position.
func (e *Engine) promoteNext() {
	var current Piece
	if e.next != nil {
		current = *e.next
	} else {
		current = e.spawn()
	}
	next := e.spawn()
	e.next = &next

	if e.board.Collides(current.Shape, current.X, current.Y) {
		e.current = nil
		e.state = StateGameOver
		e.softDrop = false
		Logger().Debug("game over", "kind", current.Kind, "locked", e.stats.PiecesLocked)
		for _, fn := range e.gameOverHandlers {
			e.pending = append(e.pending, fn)
		}
		return
	}

	e.current = &current
	e.lastDrop = e.now
	e.anchored = true
}

func (e *Engine) spawn() Piece {
	kind, tag := e.factory.NextPiece()
	e.stats.PiecesSpawned++
	return SpawnPiece(kind, tag, e.cfg.Cols)
}

// flush runs observer callbacks queued during a transition, after the
// engine has reached a consistent state.
func (e *Engine) flush() {
	for len(e.pending) > 0 {
		fns := e.pending
		e.pending = nil
		for _, fn := range fns {
			fn()
		}
	}
}
