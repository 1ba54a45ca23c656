package main

import (
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// Session plays one seeded game against a virtual clock.
type Session struct {
	Config    config.File
	Seed      uint64
	Tags      tetris.TagPool
	Weights   Weights
	MaxPieces int
	FrameStep time.Duration
}

// Play runs the game until it tops out or MaxPieces pieces have locked, and
// returns the result with the final board.
func (s Session) Play() (GameResult, tetris.BoardSnapshot, error) {
	engine, err := tetris.NewEngine(s.Config.Engine, s.Config.NewFactory(s.Seed, s.Tags))
	if err != nil {
		return GameResult{}, tetris.BoardSnapshot{}, err
	}

	result := GameResult{Seed: s.Seed}
	engine.OnLinesCleared(func(count int, rows []int) {
		if count < len(result.ClearSizes) {
			result.ClearSizes[count]++
		}
	})
	engine.OnGameOver(func() {
		result.ToppedOut = true
	})

	scheduler := loop.NewScheduler()
	scheduler.Register(&Bot{Engine: engine, Weights: s.Weights})
	scheduler.Register(&loop.TickSystem{Target: engine})

	engine.Start()
	var now time.Duration
	for engine.State() != tetris.StateGameOver {
		if s.MaxPieces > 0 && engine.Stats().PiecesLocked >= s.MaxPieces && engine.State() == tetris.StateRunning {
			break
		}
		scheduler.Once(now)
		now += s.FrameStep
	}

	stats := engine.Stats()
	result.Lines = stats.LinesCleared
	result.Clears = stats.Clears
	result.Pieces = stats.PiecesLocked
	result.PlayTime = engine.Now()
	return result, engine.Board(), nil
}
