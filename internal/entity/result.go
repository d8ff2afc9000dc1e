package entity

import "time"

// Result is the archived record of a finished game.
type Result struct {
	GameID     string `db:"game_id" json:"game_id"`
	Status     Status `db:"status" json:"status"`
	Winner     string `db:"winner" json:"winner,omitempty"`
	Moves      int    `db:"moves" json:"moves"`
	FinishedAt int64  `db:"finished_at" json:"finished_at"` // unix seconds
}

// Stats counts archived results by outcome.
type Stats struct {
	Games      int `db:"games" json:"games"`
	CrossWins  int `db:"cross_wins" json:"cross_wins"`
	NaughtWins int `db:"naught_wins" json:"naught_wins"`
	Draws      int `db:"draws" json:"draws"`
}

func NewResult(gameID string, outcome Outcome, moves int, finishedAt time.Time) *Result {
	return &Result{
		GameID:     gameID,
		Status:     outcome.Status,
		Winner:     outcome.Winner.String(),
		Moves:      moves,
		FinishedAt: finishedAt.Unix(),
	}
}
