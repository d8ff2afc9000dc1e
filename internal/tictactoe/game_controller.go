package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Game runs the turn cycle over a single board. It is not safe for concurrent use.
type Game struct {
	board   *entity.Board
	player  entity.Player
	outcome entity.Outcome

	finishGuard bool
}

type Option func(*Game)

// WithFinishGuard makes the game refuse moves once it has been won or drawn.
// Without it a finished game keeps accepting moves into empty cells.
func WithFinishGuard() Option {
	return func(that *Game) {
		that.finishGuard = true
	}
}

func New(opts ...Option) *Game {
	game := &Game{
		board:   entity.NewBoard(),
		player:  entity.Cross,
		outcome: entity.InProgress(),
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// Reset empties the board and hands the first move back to Cross.
func (that *Game) Reset() {
	that.board.Clear()
	that.player = entity.Cross
	that.outcome = entity.InProgress()
}

// PlayTurn places the current player's mark at (row, col). On success the turn passes and
// the outcome is recomputed. A rejected move leaves the game exactly as it was.
func (that *Game) PlayTurn(row, col int) error {
	if that.finishGuard && that.outcome.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.outcome)
	}

	if err := that.board.SetCell(row, col, that.player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.player = that.player.Opponent()
	that.outcome = deriveOutcome(that.board)

	return nil
}

// FindWinner reports the player holding the first complete line, if any.
func (that *Game) FindWinner() (entity.Player, bool) {
	_, winner, ok := findWinningLine(that.board)
	return winner, ok
}

func (that *Game) WinningLine() (Line, bool) {
	line, _, ok := findWinningLine(that.board)
	return line, ok
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.player
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) FinishGuard() bool {
	return that.finishGuard
}

// Board returns a copy of the board; changing it does not affect the game.
func (that *Game) Board() *entity.Board {
	return that.board.Clone()
}
