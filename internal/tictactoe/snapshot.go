package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Snapshot is the stored form of a game.
type Snapshot struct {
	Board         entity.Board   `json:"board"`
	CurrentPlayer entity.Player  `json:"current_player"`
	Outcome       entity.Outcome `json:"outcome"`
	FinishGuard   bool           `json:"finish_guard"`
}

func (that *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Board:         *that.board.Clone(),
		CurrentPlayer: that.player,
		Outcome:       that.outcome,
		FinishGuard:   that.finishGuard,
	}
}

// Restore rebuilds a game from a snapshot. The outcome is derived from the board again,
// the stored one is informational only.
func Restore(snapshot *Snapshot) (*Game, error) {
	if !snapshot.CurrentPlayer.Valid() {
		return nil, fmt.Errorf("%w: current player %d", apperror.ErrInvalidMark, snapshot.CurrentPlayer)
	}

	game := &Game{
		board:       snapshot.Board.Clone(),
		player:      snapshot.CurrentPlayer,
		finishGuard: snapshot.FinishGuard,
	}
	game.outcome = deriveOutcome(game.board)

	return game, nil
}
