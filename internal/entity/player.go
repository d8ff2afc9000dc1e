package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is the mark a side puts on the board. The zero value means "no player".
type Player uint8

const (
	Cross Player = iota + 1
	Naught
)

const (
	markCross  = "X"
	markNaught = "O"
)

func (that Player) Valid() bool {
	return that == Cross || that == Naught
}

// Opponent returns the other side. The zero value has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case Cross:
		return Naught
	case Naught:
		return Cross
	default:
		return 0
	}
}

func (that Player) String() string {
	switch that {
	case Cross:
		return markCross
	case Naught:
		return markNaught
	default:
		return ""
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case markCross:
		*that = Cross
	case markNaught:
		*that = Naught
	case "":
		*that = 0
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, text)
	}

	return nil
}
