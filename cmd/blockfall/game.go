package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/effects"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
	"github.com/plus3/blockfall/tetris"
)

type gameDeps struct {
	cfg      config.File
	engine   *tetris.Engine
	renderer *render.Renderer
	burst    *effects.Burst
	quotes   *effects.QuoteBoard
	player   *audio.Player
}

// Game implements ebiten.Game. Update advances the scheduler with the time
// since the game began; Draw renders a captured view plus the ImGui overlay.
type Game struct {
	cfg      config.File
	engine   *tetris.Engine
	renderer *render.Renderer
	burst    *effects.Burst
	quotes   *effects.QuoteBoard
	player   *audio.Player

	scheduler *loop.Scheduler
	input     *InputSystem
	perf      *debugui.PerformanceStats
	ui        *debugui.ImguiSystem
	backend   *debugui.Backend

	start time.Time
}

func newGame(d gameDeps) *Game {
	g := &Game{
		cfg:       d.cfg,
		engine:    d.engine,
		renderer:  d.renderer,
		burst:     d.burst,
		quotes:    d.quotes,
		player:    d.player,
		scheduler: loop.NewScheduler(),
		ui:        &debugui.ImguiSystem{},
		start:     time.Now(),
	}
	g.input = &InputSystem{Engine: g.engine, UI: g.ui, Keys: EbitenKeys{}, Restart: g.restart}
	g.perf = debugui.NewPerformanceStats(g.scheduler, 120)
	registerSystems(g)
	g.wireEngineEvents()
	return g
}

func (g *Game) wireEngineEvents() {
	cellSize := float64(g.cfg.Window.CellSize)
	g.engine.OnLinesCleared(func(count int, rows []int) {
		if g.cfg.Effects.Particles {
			g.burst.Spawn(g.engine.Board(), rows, cellSize)
		}
		if g.cfg.Quotes.Enabled {
			g.quotes.Show(count, g.engine.Now())
		}
		g.player.PlayClear(count)
	})
	g.engine.OnGameOver(func() {
		stats := g.engine.Stats()
		log.Printf("Game over after %d lines\n", stats.LinesCleared)
	})
}

// restart begins a new session and drops any leftover effects.
func (g *Game) restart() {
	g.burst.Clear()
	g.quotes.Hide()
	g.engine.Start()
}

func (g *Game) Update() error {
	// ImGui frame brackets the systems so deferred panels render inside it.
	g.backend.BeginFrame()
	g.scheduler.Once(time.Since(g.start))
	g.backend.EndFrame()

	if g.input.Quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := render.Capture(g.engine, g.cfg.Effects.Ghost)
	view.Burst = g.burst
	if q, ok := g.quotes.Current(g.engine.Now()); ok {
		view.Quote = q
	}
	g.renderer.Draw(screen, view)

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return g.renderer.Layout.ScreenSize()
}

// ClearEffectSystem drops the particle burst once the clear phase is over.
type ClearEffectSystem struct {
	Engine *tetris.Engine
	Burst  *effects.Burst
}

func (s *ClearEffectSystem) Execute(frame *loop.Frame) {
	if s.Engine.State() != tetris.StateClearing && s.Burst.Active() {
		s.Burst.Clear()
	}
}
