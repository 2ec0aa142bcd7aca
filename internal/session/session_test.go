package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/engine"
)

// firstCellRand always places a 2 in the first empty cell.
type firstCellRand struct{}

func (firstCellRand) Intn(int) int { return 0 }

func (firstCellRand) Choose(a, _, _, _ int) int { return a }

func newSession(grid engine.Grid) *Session {
	return New(engine.FromGrid(grid, firstCellRand{}), nil)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		entry   string
		want    engine.Direction
		wantErr bool
	}{
		{"up", engine.DirUp, false},
		{"W", engine.DirUp, false},
		{"  Left ", engine.DirLeft, false},
		{"d", engine.DirRight, false},
		{"DOWN\n", engine.DirDown, false},
		{"s", engine.DirDown, false},
		{"", 0, true},
		{"x", 0, true},
		{"upp", 0, true},
		{"u p", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			got, err := ParseDirection(tt.entry)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDirection) {
					t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", tt.entry, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) error: %v", tt.entry, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.entry, got, tt.want)
			}
		})
	}
}

var cornerGrid = engine.Grid{
	{2, 0, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
}

func TestPromptListsLegalMovesInBoardOrder(t *testing.T) {
	tests := []struct {
		name string
		grid engine.Grid
		want string
	}{
		{
			name: "corner",
			grid: cornerGrid,
			want: "enter a valid direction (right/d, down/s): ",
		},
		{
			name: "top edge",
			grid: engine.Grid{{0, 2, 0, 0}},
			want: "enter a valid direction (left/a, right/d, down/s): ",
		},
		{
			name: "center",
			grid: engine.Grid{{}, {0, 2, 0, 0}},
			want: "enter a valid direction (left/a, right/d, up/w, down/s): ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newSession(tt.grid).Prompt(); got != tt.want {
				t.Errorf("Prompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubmitRejectsWithoutMutation(t *testing.T) {
	s := newSession(cornerGrid)

	for _, entry := range []string{"left", "x", "w"} {
		if _, err := s.Submit(entry); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Submit(%q) error = %v, want ErrInvalidDirection", entry, err)
		}
		if !s.Retry() {
			t.Errorf("Retry() = false after rejected %q", entry)
		}
	}
	if s.Board().Grid() != cornerGrid {
		t.Errorf("rejected input changed board:\n%v", s.Board().Grid())
	}
	if s.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", s.Moves())
	}

	out, err := s.Submit(" D ")
	if err != nil {
		t.Fatalf("Submit(d) error: %v", err)
	}
	if out.Direction != engine.DirRight || out.Won || out.Lost {
		t.Errorf("Submit(d) outcome = %+v", out)
	}
	if s.Retry() {
		t.Error("Retry() should reset after a successful move")
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", s.Moves())
	}

	want := engine.Grid{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if s.Board().Grid() != want {
		t.Errorf("board after right:\n%v\nwant\n%v", s.Board().Grid(), want)
	}
}

func TestSubmitReportsWin(t *testing.T) {
	s := newSession(engine.Grid{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if s.Won() {
		t.Fatal("Won() before the merge")
	}
	out, err := s.Submit("a")
	if err != nil {
		t.Fatalf("Submit(a) error: %v", err)
	}
	if !out.Won || !s.Won() {
		t.Error("expected a win after merging two 1024 tiles")
	}
	if out.Lost {
		t.Error("win should not end the game")
	}
}

func TestSubmitReportsLoss(t *testing.T) {
	s := newSession(engine.Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{0, 4, 2, 8},
	})

	out, err := s.Submit("left")
	if err != nil {
		t.Fatalf("Submit(left) error: %v", err)
	}
	if !out.Lost || !s.Lost() {
		t.Fatalf("expected loss, board:\n%v", s.Board().Grid())
	}
	if got := s.Prompt(); got != "enter a valid direction (): " {
		t.Errorf("Prompt() on lost board = %q", got)
	}

	if _, err := s.Submit("up"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Submit after loss error = %v, want ErrGameOver", err)
	}
}

func TestSubmitLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(engine.FromGrid(cornerGrid, firstCellRand{}), logger)

	if _, err := s.Submit("q"); err == nil {
		t.Fatal("Submit(q) should fail")
	}
	if _, err := s.Submit("s"); err != nil {
		t.Fatalf("Submit(s) error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"rejected input", "move applied", "direction=down"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
