package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestResultRepository_Save(t *testing.T) {
	ctx, db := suite.NewSQLite(t)
	resultRepo := NewResultRepository(db.Connection)
	finishedAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	// Given: a game Cross won in five moves
	result := entity.NewResult("g1", entity.Won(entity.Cross), 5, finishedAt)

	// When: the result is saved
	err := resultRepo.Save(ctx, result)
	require.NoError(t, err)

	// Then: it can be read back
	stored, err := resultRepo.GetByGameID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, &entity.Result{GameID: "g1", Status: entity.StatusWon, Winner: "X", Moves: 5, FinishedAt: finishedAt.Unix()}, stored)

	// When: the same game finishes again after a reset
	require.NoError(t, resultRepo.Save(ctx, entity.NewResult("g1", entity.Drawn(), 9, finishedAt)))

	// Then: the newer result replaces the old one
	stored, err = resultRepo.GetByGameID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDrawn, stored.Status)
	assert.Empty(t, stored.Winner)
}

func TestResultRepository_GetByGameID_NotFound(t *testing.T) {
	ctx, db := suite.NewSQLite(t)
	resultRepo := NewResultRepository(db.Connection)

	_, err := resultRepo.GetByGameID(ctx, "missing")

	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestResultRepository_Stats(t *testing.T) {
	t.Run("Empty archive", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		resultRepo := NewResultRepository(db.Connection)

		stats, err := resultRepo.Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{}, stats)
	})

	t.Run("Counts by outcome", func(t *testing.T) {
		ctx, db := suite.NewSQLite(t)
		resultRepo := NewResultRepository(db.Connection)
		now := time.Now()

		// Given: two Cross wins, one Naught win and one draw
		for id, outcome := range map[string]entity.Outcome{
			"a": entity.Won(entity.Cross),
			"b": entity.Won(entity.Cross),
			"c": entity.Won(entity.Naught),
			"d": entity.Drawn(),
		} {
			require.NoError(t, resultRepo.Save(ctx, entity.NewResult(id, outcome, 7, now)))
		}

		// When: stats are requested
		stats, err := resultRepo.Stats(ctx)

		// Then: each outcome is counted
		require.NoError(t, err)
		assert.Equal(t, &entity.Stats{Games: 4, CrossWins: 2, NaughtWins: 1, Draws: 1}, stats)
	})
}
