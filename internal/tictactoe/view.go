package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// View is the read-only picture of a game handed to presentation layers.
type View struct {
	ID            string         `json:"id,omitempty"`
	Board         entity.Board   `json:"board"`
	CurrentPlayer entity.Player  `json:"current_player"`
	Outcome       entity.Outcome `json:"outcome"`
	WinningLine   *Line          `json:"winning_line,omitempty"`
}

func (that *Game) View() *View {
	view := &View{
		Board:         *that.board.Clone(),
		CurrentPlayer: that.player,
		Outcome:       that.outcome,
	}

	if line, ok := that.WinningLine(); ok {
		view.WinningLine = &line
	}

	return view
}
