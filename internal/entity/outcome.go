package entity

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

// Outcome is the derived state of a game. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(player Player) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Drawn() Outcome {
	return Outcome{Status: StatusDrawn}
}

func (that Outcome) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// IsTerminal reports whether the game has been won or drawn.
func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that Outcome) String() string {
	if that.Status == StatusWon {
		return string(that.Status) + ":" + that.Winner.String()
	}

	return string(that.Status)
}
