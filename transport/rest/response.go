package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type errorResponse struct {
	Error string          `json:"error"`
	Game  *tictactoe.View `json:"game,omitempty"`
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

// writeError maps domain errors to status codes. view, when present, is the unchanged game.
func (that *Handlers) writeError(w http.ResponseWriter, err error, view *tictactoe.View) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status, message = http.StatusNotFound, apperror.ErrGameNotFound.Error()
	case errors.Is(err, apperror.ErrInvalidCell):
		status, message = http.StatusUnprocessableEntity, apperror.ErrInvalidCell.Error()
	case errors.Is(err, apperror.ErrCellOccupied):
		status, message = http.StatusConflict, apperror.ErrCellOccupied.Error()
	case errors.Is(err, apperror.ErrGameFinished):
		status, message = http.StatusConflict, apperror.ErrGameFinished.Error()
	default:
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message, Game: view})
}
