package tetris_test

import (
	"errors"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestSpawnPiecePosition(t *testing.T) {
	tests := []struct {
		kind tetris.Kind
		x, y int
	}{
		{tetris.KindI, 3, -1},
		{tetris.KindO, 4, 0},
		{tetris.KindT, 3, 0},
		{tetris.KindZ, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := tetris.SpawnPiece(tt.kind, 5, 10)
			assert.Equal(t, tt.x, p.X)
			assert.Equal(t, tt.y, p.Y)
			assert.Equal(t, tetris.Tag(5), p.Tag)
		})
	}
}

func TestPieceCells(t *testing.T) {
	p := tetris.SpawnPiece(tetris.KindI, tetris.NoTag, 10)

	var got [][2]int
	for x, y := range p.Cells() {
		got = append(got, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{3, 0}, {4, 0}, {5, 0}, {6, 0}}, got)

	moved := p.Translated(1, 2)
	assert.Equal(t, 4, moved.X)
	assert.Equal(t, 1, moved.Y)
	assert.Equal(t, 3, p.X)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, tetris.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*tetris.Config)
	}{
		{"narrow", func(c *tetris.Config) { c.Cols = 3 }},
		{"short", func(c *tetris.Config) { c.Rows = 2 }},
		{"no gravity", func(c *tetris.Config) { c.GravityInterval = 0 }},
		{"no soft drop", func(c *tetris.Config) { c.SoftDropInterval = -time.Millisecond }},
		{"negative clear", func(c *tetris.Config) { c.ClearDuration = -1 }},
		{"no kicks", func(c *tetris.Config) { c.Kicks = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, tetris.ErrInvalidConfig), "got %v", err)

			_, err = tetris.NewEngine(cfg, tetris.NewFactory(1, nil))
			assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
		})
	}
}

func TestConfigDropInterval(t *testing.T) {
	cfg := tetris.DefaultConfig()
	assert.Equal(t, 800*time.Millisecond, cfg.DropInterval(false))
	assert.Equal(t, 50*time.Millisecond, cfg.DropInterval(true))
}
