package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

var sampleGrid = engine.Grid{
	{2, 0, 16, 0},
	{0, 0, 0, 0},
	{0, 128, 0, 0},
	{0, 0, 0, 2048},
}

func TestBoardLayout(t *testing.T) {
	s := Board(sampleGrid, Options{})

	if s.Width() != 37 || s.Height() != 13 {
		t.Fatalf("board size = %dx%d, want 37x13", s.Width(), s.Height())
	}

	expected := map[int]string{
		0:  strings.Repeat("_", 37),
		1:  "|        |        |        |        |",
		2:  "| 2      |        | 16     |        |",
		3:  "|________|________|________|________|",
		8:  "|        | 128    |        |        |",
		11: "|        |        |        | 2048   |",
		12: "|________|________|________|________|",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}
}

func TestBoardColors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		x, y int
		want core.Color
	}{
		{"tile 2 gets log2 colour", Options{Color: true}, 1, 1, 1},
		{"tile 2048 gets colour 11", Options{Color: true}, 28, 11, 11},
		{"colour covers whole cell", Options{Color: true}, 8, 3, 1},
		{"border stays uncoloured", Options{Color: true}, 0, 2, core.ColorNone},
		{"empty cell stays uncoloured", Options{Color: true}, 10, 2, core.ColorNone},
		{"palette override", Options{Color: true, Palette: Palette{7: 202}}, 10, 8, 202},
		{"colour disabled", Options{}, 1, 1, core.ColorNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Board(sampleGrid, tt.opts)
			if got := s.GetCell(tt.x, tt.y).Color; got != tt.want {
				t.Errorf("colour at (%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestExponent(t *testing.T) {
	tests := []struct {
		value, want int
	}{
		{0, 0},
		{2, 1},
		{4, 2},
		{1024, 10},
		{2048, 11},
		{131072, 17},
	}
	for _, tt := range tests {
		if got := Exponent(tt.value); got != tt.want {
			t.Errorf("Exponent(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
