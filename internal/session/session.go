// Package session runs the turn loop on top of the engine: it builds the
// prompt, parses direction tokens, rejects illegal moves and reports wins
// and losses. Front-ends only handle I/O.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/engine"
)

// Messages shown by the front-ends.
const (
	WelcomeMessage = "Welcome to 2048!"
	InvalidNotice  = "invalid direction, try again"
	WinMessage     = "you have won!"
	LossMessage    = "you have lost!"
)

var (
	// ErrInvalidDirection is returned for unknown tokens and for
	// directions that would not change the board.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrGameOver is returned when a move is submitted after the game is lost.
	ErrGameOver = errors.New("game over")
)

// Outcome describes the result of a successful move.
type Outcome struct {
	Direction engine.Direction
	Won       bool // 2048 is on the board; play continues
	Lost      bool // no legal move remains
}

// Session drives one game on a board.
type Session struct {
	board  *engine.Board
	logger *log.Logger
	retry  bool
	moves  int
}

// New creates a session for board. A nil logger discards output.
func New(board *engine.Board, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		board:  board,
		logger: logger,
	}
}

// Board returns the board being played.
func (s *Session) Board() *engine.Board {
	return s.board
}

// ParseDirection maps a word ("up") or a letter ("w") to a direction.
// Case and surrounding whitespace are ignored.
func ParseDirection(entry string) (engine.Direction, error) {
	token := strings.ToLower(strings.TrimSpace(entry))
	for _, dir := range engine.Directions {
		if token == dir.String() || token == dir.Key() {
			return dir, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}

// Prompt returns the input prompt listing every legal move in the order
// the board evaluates them: left, right, up, down.
func (s *Session) Prompt() string {
	moves := s.board.LegalMoves()
	options := make([]string, len(moves))
	for i, dir := range moves {
		options[i] = dir.String() + "/" + dir.Key()
	}
	return "enter a valid direction (" + strings.Join(options, ", ") + "): "
}

// Retry reports whether the previous submission was rejected.
func (s *Session) Retry() bool {
	return s.retry
}

// Moves returns the number of moves applied so far.
func (s *Session) Moves() int {
	return s.moves
}

// Won reports whether a 2048 tile is on the board.
func (s *Session) Won() bool {
	return s.board.HasTile(engine.WinTile)
}

// Lost reports whether no legal move remains.
func (s *Session) Lost() bool {
	return len(s.board.LegalMoves()) == 0
}

// Submit parses entry and applies the move. Unknown tokens and illegal
// directions return ErrInvalidDirection and leave the board untouched.
func (s *Session) Submit(entry string) (Outcome, error) {
	if s.Lost() {
		return Outcome{Lost: true}, ErrGameOver
	}

	dir, err := ParseDirection(entry)
	if err != nil {
		s.retry = true
		s.logger.Debug("rejected input", "entry", entry)
		return Outcome{}, err
	}

	if !s.board.IsMoveLegal(dir) {
		s.retry = true
		s.logger.Debug("rejected move", "direction", dir)
		return Outcome{}, fmt.Errorf("%w: %s does not move any tile", ErrInvalidDirection, dir)
	}

	if err := s.board.ApplyMove(dir); err != nil {
		return Outcome{}, fmt.Errorf("apply %s: %w", dir, err)
	}
	s.retry = false
	s.moves++

	out := Outcome{
		Direction: dir,
		Won:       s.Won(),
		Lost:      s.Lost(),
	}
	s.logger.Debug("move applied",
		"direction", dir,
		"moves", s.moves,
		"empty", s.board.EmptyCount(),
		"max", s.board.MaxTile(),
	)
	if out.Lost {
		s.logger.Info("game over", "moves", s.moves, "max", s.board.MaxTile())
	}
	return out, nil
}
