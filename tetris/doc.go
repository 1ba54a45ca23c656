// Package tetris implements the game state of a falling-block puzzle.
//
// An Engine owns a Board and the active and previewed pieces. Callers drive
// it with player commands (MoveHorizontal, MoveDown, Rotate, HardDrop,
// SetSoftDrop) and with Tick, which carries a monotonic timestamp and applies
// gravity and the timed line-clear pause. Nothing in the package reads a
// clock or spawns goroutines; all time arrives through Tick.
//
// Observers registered with OnLinesCleared, OnGameOver and OnLock are called
// after the transition that produced the event has completed, so they may
// freely read engine state.
package tetris
