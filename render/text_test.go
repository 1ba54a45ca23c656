package render_test

import (
	"testing"

	"github.com/plus3/blockfall/render"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "two lines", 20, []string{"two lines"}},
		{"breaks on spaces", "watch closely this is how", 12, []string{"watch", "closely this", "is how"}},
		{"cuts long words", "abcdefgh ij", 3, []string{"abc", "def", "gh", "ij"}},
		{"collapses spaces", "  a   b  ", 10, []string{"a b"}},
		{"empty", "", 10, nil},
		{"no width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Wrap(tt.text, tt.width))
		})
	}
}
