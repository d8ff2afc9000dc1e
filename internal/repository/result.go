package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByGameID(ctx context.Context, gameID string) (*entity.Result, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type dbResult struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) ResultRepository {
	return &dbResult{
		db: db,
	}
}

// Save replaces an earlier result of the same game, a reset game can finish again.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	query := `INSERT OR REPLACE INTO results (game_id, status, winner, moves, finished_at)
		VALUES (:game_id, :status, :winner, :moves, :finished_at)`

	if _, err := that.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByGameID(ctx context.Context, gameID string) (*entity.Result, error) {
	var result entity.Result

	query := `SELECT game_id, status, winner, moves, finished_at FROM results WHERE game_id = ?`
	err := that.db.GetContext(ctx, &result, query, gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by game id: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Stats(ctx context.Context) (*entity.Stats, error) {
	var stats entity.Stats

	query := `SELECT
		COUNT(*) AS games,
		COALESCE(SUM(CASE WHEN status = ? AND winner = ? THEN 1 ELSE 0 END), 0) AS cross_wins,
		COALESCE(SUM(CASE WHEN status = ? AND winner = ? THEN 1 ELSE 0 END), 0) AS naught_wins,
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS draws
		FROM results`

	err := that.db.GetContext(ctx, &stats, query,
		entity.StatusWon, entity.Cross.String(),
		entity.StatusWon, entity.Naught.String(),
		entity.StatusDrawn,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	return &stats, nil
}
