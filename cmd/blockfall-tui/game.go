package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/assets"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/effects"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminals report key repeats but never releases, so soft drop ends
	// this long after the last Down.
	softDropHold = 150 * time.Millisecond

	// Each board cell is two terminal columns wide.
	cellWidth = 2
	boardLeft = 2
	boardTop  = 1
	panelGap  = 4
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	flashStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	quoteStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

type Game struct {
	screen tcell.Screen
	engine *tetris.Engine
	quotes *effects.QuoteBoard
	player *audio.Player

	scheduler *loop.Scheduler
	start     time.Time
	clock     func() time.Duration

	softDropUntil time.Duration
	quotesEnabled bool
	showGhost     bool
}

func NewGame(screen tcell.Screen, engine *tetris.Engine, quotes *effects.QuoteBoard, player *audio.Player) *Game {
	g := &Game{
		screen:        screen,
		engine:        engine,
		quotes:        quotes,
		player:        player,
		scheduler:     loop.NewScheduler(),
		start:         time.Now(),
		quotesEnabled: true,
		showGhost:     true,
	}
	g.clock = func() time.Duration { return time.Since(g.start) }

	g.scheduler.Register(loop.SystemFunc(g.releaseSoftDrop))
	g.scheduler.Register(&loop.TickSystem{Target: engine})
	g.scheduler.Register(loop.SystemFunc(func(*loop.Frame) { g.draw() }))

	engine.OnLinesCleared(func(count int, rows []int) {
		if g.quotesEnabled {
			g.quotes.Show(count, engine.Now())
		}
		g.player.PlayClear(count)
	})
	engine.OnGameOver(func() {
		log.Printf("Game over after %d lines", engine.Stats().LinesCleared)
	})
	return g
}

func (g *Game) releaseSoftDrop(frame *loop.Frame) {
	if g.engine.SoftDrop() && frame.Now >= g.softDropUntil {
		g.engine.SetSoftDrop(false)
	}
}

func (g *Game) restart() {
	g.quotes.Hide()
	g.softDropUntil = 0
	g.engine.Start()
}

// handleKey applies one key event and reports whether the game should keep
// running.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	key, r := ev.Key(), ev.Rune()
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q') {
		return false
	}
	if key == tcell.KeyRune && (r == 'r' || r == 'R') {
		g.restart()
		return true
	}

	switch g.engine.State() {
	case tetris.StateNotStarted, tetris.StateGameOver:
		if key == tcell.KeyEnter || key == tcell.KeyUp || (key == tcell.KeyRune && r == ' ') {
			g.restart()
		}
		return true
	}

	switch key {
	case tcell.KeyLeft:
		g.engine.MoveHorizontal(-1)
	case tcell.KeyRight:
		g.engine.MoveHorizontal(1)
	case tcell.KeyDown:
		g.engine.MoveDown()
		g.engine.SetSoftDrop(true)
		g.softDropUntil = g.clock() + softDropHold
	case tcell.KeyUp:
		g.engine.HardDrop()
	case tcell.KeyRune:
		if r == ' ' {
			g.engine.Rotate()
		}
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				g.screen.Sync()
			}

		case <-ticker.C:
			g.scheduler.Once(g.clock())
		}
	}
}

func (g *Game) draw() {
	g.screen.Clear()
	board := g.engine.Board()

	flash := make(map[int]bool)
	if rows, _, ok := g.engine.Clearing(); ok {
		for _, y := range rows {
			flash[y] = true
		}
	}

	right := boardLeft + board.Cols*cellWidth
	bottom := boardTop + board.Rows
	for y := boardTop; y < bottom; y++ {
		g.screen.SetContent(boardLeft-1, y, '│', nil, borderStyle)
		g.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	g.screen.SetContent(boardLeft-1, bottom, '└', nil, borderStyle)
	g.screen.SetContent(right, bottom, '┘', nil, borderStyle)
	for x := boardLeft; x < right; x++ {
		g.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}

	for y := range board.Rows {
		for x := range board.Cols {
			cell := board.At(x, y)
			switch {
			case !cell.Filled:
				g.drawCell(x, y, " .", emptyStyle)
			case flash[y]:
				g.drawCell(x, y, "  ", flashStyle)
			default:
				g.drawCell(x, y, "██", tagStyle(cell.Tag))
			}
		}
	}

	if g.showGhost {
		if ghost, ok := g.engine.Ghost(); ok {
			g.drawPiece(ghost, "[]", ghostStyle)
		}
	}
	if p, ok := g.engine.Current(); ok {
		g.drawPiece(p, "██", tagStyle(p.Tag))
	}

	g.drawPanel(right + panelGap)
	g.screen.Show()
}

func (g *Game) drawCell(x, y int, glyphs string, style tcell.Style) {
	col := boardLeft + x*cellWidth
	for i, r := range []rune(glyphs) {
		g.screen.SetContent(col+i, boardTop+y, r, nil, style)
	}
}

func (g *Game) drawPiece(p tetris.Piece, glyphs string, style tcell.Style) {
	rows := g.engine.Config().Rows
	for x, y := range p.Cells() {
		if y >= 0 && y < rows {
			g.drawCell(x, y, glyphs, style)
		}
	}
}

func (g *Game) drawPanel(left int) {
	y := boardTop
	g.text(left, y, "NEXT", dimStyle)
	if next, ok := g.engine.Next(); ok {
		style := tagStyle(next.Tag)
		for x, cy := range next.Shape.Cells() {
			for i := range cellWidth {
				g.screen.SetContent(left+x*cellWidth+i, y+2+cy, '█', nil, style)
			}
		}
	}

	y += 7
	stats := g.engine.Stats()
	g.text(left, y, fmt.Sprintf("Lines  %d", stats.LinesCleared), textStyle)
	g.text(left, y+1, fmt.Sprintf("Clears %d", stats.Clears), textStyle)
	g.text(left, y+2, fmt.Sprintf("Pieces %d", stats.PiecesLocked), textStyle)

	y += 4
	switch g.engine.State() {
	case tetris.StateNotStarted:
		g.text(left, y, "Press Space to start", quoteStyle)
	case tetris.StateGameOver:
		g.text(left, y, "GAME OVER", flashStyle)
		g.text(left, y+1, "Press R to restart", textStyle)
	}

	if g.quotesEnabled {
		if q, ok := g.quotes.Current(g.engine.Now()); ok {
			g.text(left, y+3, q, quoteStyle)
		}
	}

	g.text(left, y+6, "←/→ move  ↓ soft  ↑ drop", dimStyle)
	g.text(left, y+7, "space rotate  r restart  q quit", dimStyle)
}

func (g *Game) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

// tagStyle colors a cell from the shared tag palette.
func tagStyle(tag tetris.Tag) tcell.Style {
	c, ok := assets.TagColor(tag)
	if !ok {
		return textStyle
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
