package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameService interface {
	CreateGame(ctx context.Context) (*tictactoe.View, error)
	GetGame(ctx context.Context, id string) (*tictactoe.View, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*tictactoe.View, error)
	ResetGame(ctx context.Context, id string) (*tictactoe.View, error)
	DeleteGame(ctx context.Context, id string) error
	GetStats(ctx context.Context) (*entity.Stats, error)
}

// turnRequest carries already parsed coordinates; pointers tell a missing field from 0.
type turnRequest struct {
	Row *int `json:"row" validate:"required,min=0,max=2"`
	Col *int `json:"col" validate:"required,min=0,max=2"`
}

type Handlers struct {
	logger   *slog.Logger
	games    gameService
	validate *validator.Validate
}

func NewHandlers(logger *slog.Logger, games gameService) *Handlers {
	return &Handlers{
		logger:   logger.With("component", "rest"),
		games:    games,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (that *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.PingHandler)
	mux.HandleFunc("GET /stats", that.GetStats)
	mux.HandleFunc("POST /games", that.CreateGame)
	mux.HandleFunc("GET /games/{id}", that.GetGame)
	mux.HandleFunc("DELETE /games/{id}", that.DeleteGame)
	mux.HandleFunc("POST /games/{id}/turns", that.MakeTurn)
	mux.HandleFunc("POST /games/{id}/reset", that.ResetGame)

	return mux
}

func (that *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, view)
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *Handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MakeTurn")

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug("bad turn request", "error", err)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := that.validate.Struct(req); err != nil {
		log.Debug("invalid turn request", "error", err)
		that.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "row and col must be between 0 and 2"})
		return
	}

	view, err := that.games.MakeTurn(r.Context(), r.PathValue("id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err, view)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *Handlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.ResetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.games.GetStats(r.Context())
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}
