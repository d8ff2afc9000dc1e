package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.Snapshot) error
	GetByID(ctx context.Context, id string) (*tictactoe.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Stats(ctx context.Context) (*entity.Stats, error)
}

// GameManager hosts many games. Every operation on a game runs under that game's lock,
// so concurrent requests for one game are applied one after another.
type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	resultRepo resultRepo

	finishGuard bool
	locks       *gameLocks
	now         func() time.Time
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, resultRepo resultRepo, finishGuard bool) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		resultRepo: resultRepo,

		finishGuard: finishGuard,
		locks:       newGameLocks(),
		now:         time.Now,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*tictactoe.View, error) {
	id := uuid.NewString()

	var opts []tictactoe.Option
	if that.finishGuard {
		opts = append(opts, tictactoe.WithFinishGuard())
	}

	game := tictactoe.New(opts...)
	if err := that.gameRepo.CreateOrUpdate(ctx, id, game.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	that.logger.Info("game created", "gameID", id)

	return viewOf(id, game), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*tictactoe.View, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return viewOf(id, game), nil
}

// MakeTurn plays the current player's mark at (row, col). A rejected move comes back with
// the unchanged view alongside the error.
func (that *GameManager) MakeTurn(ctx context.Context, id string, row, col int) (*tictactoe.View, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasFinished := game.Outcome().IsTerminal()

	if err = game.PlayTurn(row, col); err != nil {
		if errors.Is(err, apperror.ErrMoveRejected) || errors.Is(err, apperror.ErrGameFinished) {
			log.Debug("move rejected", "row", row, "col", col, "error", err)
			return viewOf(id, game), fmt.Errorf("failed make turn: %w", err)
		}

		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, id, game.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if !wasFinished && game.Outcome().IsTerminal() {
		that.archiveResult(ctx, id, game)
	}

	return viewOf(id, game), nil
}

// ResetGame starts the game over on the same id.
func (that *GameManager) ResetGame(ctx context.Context, id string) (*tictactoe.View, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, id, game.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", id)

	return viewOf(id, game), nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) GetStats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.resultRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*tictactoe.Game, error) {
	snapshot, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	game, err := tictactoe.Restore(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed restore game %s: %w", id, err)
	}

	return game, nil
}

// archiveResult is best effort; the finished game is already stored.
func (that *GameManager) archiveResult(ctx context.Context, id string, game *tictactoe.Game) {
	log := that.logger.With("method", "archiveResult", "gameID", id)

	result := entity.NewResult(id, game.Outcome(), game.Board().Count(), that.now())
	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to archive result", "error", err)
		return
	}

	log.Info("game finished", "outcome", game.Outcome().String())
}

func viewOf(id string, game *tictactoe.Game) *tictactoe.View {
	view := game.View()
	view.ID = id

	return view
}
