package tictactoe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestRestore(t *testing.T) {
	t.Run("Round trip keeps the game", func(t *testing.T) {
		// Given: a guarded game with a few moves
		game := New(WithFinishGuard())
		playAll(t, game, entity.Coord{Row: 1, Col: 1}, entity.Coord{Row: 0, Col: 2})

		// When: it is stored as JSON and restored
		data, err := json.Marshal(game.Snapshot())
		require.NoError(t, err)

		var snapshot Snapshot
		require.NoError(t, json.Unmarshal(data, &snapshot))

		restored, err := Restore(&snapshot)
		require.NoError(t, err)

		// Then: the restored game equals the original
		assert.Equal(t, game.Snapshot(), restored.Snapshot())
		assert.Equal(t, entity.Cross, restored.CurrentPlayer())
		assert.True(t, restored.FinishGuard())
	})

	t.Run("Outcome is derived from the board", func(t *testing.T) {
		// Given: a snapshot whose stored outcome disagrees with its board
		snapshot := &Snapshot{
			Board:         *boardOf(t, [3][3]entity.Player{{x, x, x}, {o, o, 0}, {0, 0, 0}}),
			CurrentPlayer: entity.Naught,
			Outcome:       entity.InProgress(),
		}

		// When: it is restored
		game, err := Restore(snapshot)
		require.NoError(t, err)

		// Then: the outcome reflects the board
		assert.Equal(t, entity.Won(entity.Cross), game.Outcome())
	})

	t.Run("Error on missing current player", func(t *testing.T) {
		_, err := Restore(&Snapshot{})

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGame_View(t *testing.T) {
	// Given: Cross has won on the main diagonal
	game := New()
	playAll(t, game,
		entity.Coord{Row: 0, Col: 0}, entity.Coord{Row: 0, Col: 1},
		entity.Coord{Row: 1, Col: 1}, entity.Coord{Row: 0, Col: 2},
		entity.Coord{Row: 2, Col: 2},
	)

	// When: the view is encoded
	data, err := json.Marshal(game.View())
	require.NoError(t, err)

	// Then: it carries the board, the outcome and the winning line
	assert.JSONEq(t, `{
		"board": [["X","O","O"],["","X",""],["","","X"]],
		"current_player": "O",
		"outcome": {"status": "won", "winner": "X"},
		"winning_line": [{"row":0,"col":0},{"row":1,"col":1},{"row":2,"col":2}]
	}`, string(data))
}
