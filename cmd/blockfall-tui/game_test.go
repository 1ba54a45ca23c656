package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/effects"
	"github.com/plus3/blockfall/tetris"
)

func newTestGame(t *testing.T, kinds ...tetris.Kind) (*Game, *time.Duration) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	engine, err := tetris.NewEngine(tetris.DefaultConfig(), &tetris.Factory{
		Kinds: tetris.NewSequenceRandomizer(kinds...),
		Tags:  tetris.NewRandomTags(1, paletteTags),
	})
	require.NoError(t, err)

	g := NewGame(screen, engine, effects.NewQuoteBoard(1, time.Second, [4][]string{}), audio.NewPlayer(0))
	now := new(time.Duration)
	g.clock = func() time.Duration { return *now }
	return g, now
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKeyStartsAndQuits(t *testing.T) {
	g, _ := newTestGame(t, tetris.KindT)

	assert.True(t, g.handleKey(key(tcell.KeyLeft)))
	assert.Equal(t, tetris.StateNotStarted, g.engine.State())

	assert.True(t, g.handleKey(runeKey(' ')))
	assert.Equal(t, tetris.StateRunning, g.engine.State())

	assert.False(t, g.handleKey(runeKey('q')))
	assert.False(t, g.handleKey(key(tcell.KeyEscape)))
}

func TestHandleKeyCommands(t *testing.T) {
	g, _ := newTestGame(t, tetris.KindT)
	g.engine.Start()

	g.handleKey(key(tcell.KeyRight))
	p, _ := g.engine.Current()
	assert.Equal(t, 4, p.X)

	g.handleKey(runeKey(' '))
	p, _ = g.engine.Current()
	assert.False(t, p.Shape.Equal(tetris.BaseShape(tetris.KindT)), "rotated")

	g.handleKey(key(tcell.KeyUp))
	assert.Equal(t, 1, g.engine.Stats().PiecesLocked)
}

func TestSoftDropReleasesAfterHold(t *testing.T) {
	g, now := newTestGame(t, tetris.KindO)
	g.engine.Start()
	g.scheduler.Once(0)

	*now = 10 * time.Millisecond
	g.handleKey(key(tcell.KeyDown))
	assert.True(t, g.engine.SoftDrop())

	g.scheduler.Once(100 * time.Millisecond)
	assert.True(t, g.engine.SoftDrop(), "still inside the hold window")

	g.scheduler.Once(160 * time.Millisecond)
	assert.False(t, g.engine.SoftDrop())
}

func TestDrawLockedCells(t *testing.T) {
	g, _ := newTestGame(t, tetris.KindO)
	g.engine.Start()
	g.engine.HardDrop()

	g.draw()
	screen := g.screen

	bottom := boardTop + 19
	for _, x := range []int{4, 5} {
		mainc, _, _, _ := screen.GetContent(boardLeft+x*cellWidth, bottom)
		assert.Equal(t, '█', mainc, "cell %d", x)
	}
	mainc, _, _, _ := screen.GetContent(boardLeft, bottom)
	assert.Equal(t, ' ', mainc)
	mainc, _, _, _ = screen.GetContent(boardLeft+1, bottom)
	assert.Equal(t, '.', mainc)
}

func TestTagStyleUsesPalette(t *testing.T) {
	assert.Equal(t, textStyle, tagStyle(tetris.NoTag))
	assert.NotEqual(t, tagStyle(1), tagStyle(2))
}
