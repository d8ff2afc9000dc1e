package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type turnCall struct {
	id       string
	row, col int
}

type stubService struct {
	view    *tictactoe.View
	stats   *entity.Stats
	err     error
	turns   []turnCall
	deleted []string
}

func (that *stubService) CreateGame(_ context.Context) (*tictactoe.View, error) {
	return that.view, that.err
}

func (that *stubService) GetGame(_ context.Context, _ string) (*tictactoe.View, error) {
	return that.view, that.err
}

func (that *stubService) MakeTurn(_ context.Context, id string, row, col int) (*tictactoe.View, error) {
	that.turns = append(that.turns, turnCall{id: id, row: row, col: col})
	return that.view, that.err
}

func (that *stubService) ResetGame(_ context.Context, _ string) (*tictactoe.View, error) {
	return that.view, that.err
}

func (that *stubService) DeleteGame(_ context.Context, id string) error {
	that.deleted = append(that.deleted, id)
	return that.err
}

func (that *stubService) GetStats(_ context.Context) (*entity.Stats, error) {
	return that.stats, that.err
}

func newTestRouter(service *stubService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandlers(logger, service).Routes()
}

func newView(id string) *tictactoe.View {
	view := tictactoe.New().View()
	view.ID = id
	return view
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestPing(t *testing.T) {
	rec := serve(t, newTestRouter(&stubService{}), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestCreateGame(t *testing.T) {
	// Given
	service := &stubService{view: newView("game-1")}

	// When
	rec := serve(t, newTestRouter(service), http.MethodPost, "/games", "")

	// Then
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view tictactoe.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "game-1", view.ID)
	assert.Equal(t, entity.Cross, view.CurrentPlayer)
	assert.Equal(t, entity.InProgress(), view.Outcome)
}

func TestGetGame_NotFound(t *testing.T) {
	// Given
	service := &stubService{err: fmt.Errorf("failed get game: %w", apperror.ErrGameNotFound)}

	// When
	rec := serve(t, newTestRouter(service), http.MethodGet, "/games/missing", "")

	// Then
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperror.ErrGameNotFound.Error(), decodeError(t, rec).Error)
}

func TestMakeTurn(t *testing.T) {
	// Given
	service := &stubService{view: newView("game-1")}

	// When
	rec := serve(t, newTestRouter(service), http.MethodPost, "/games/game-1/turns", `{"row":0,"col":2}`)

	// Then
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []turnCall{{id: "game-1", row: 0, col: 2}}, service.turns)
}

func TestMakeTurn_RejectedRequests(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "malformed json", body: `{"row":`, status: http.StatusBadRequest},
		{name: "missing col", body: `{"row":1}`, status: http.StatusUnprocessableEntity},
		{name: "row out of range", body: `{"row":3,"col":0}`, status: http.StatusUnprocessableEntity},
		{name: "negative col", body: `{"row":0,"col":-1}`, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			service := &stubService{view: newView("game-1")}

			// When
			rec := serve(t, newTestRouter(service), http.MethodPost, "/games/game-1/turns", tt.body)

			// Then
			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec).Error)
			assert.Empty(t, service.turns, "service must not be called")
		})
	}
}

func TestMakeTurn_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "occupied cell",
			err:     fmt.Errorf("failed make turn: %w", apperror.ErrCellOccupied),
			status:  http.StatusConflict,
			message: apperror.ErrCellOccupied.Error(),
		},
		{
			name:    "finished game",
			err:     fmt.Errorf("failed make turn: %w", apperror.ErrGameFinished),
			status:  http.StatusConflict,
			message: apperror.ErrGameFinished.Error(),
		},
		{
			name:    "invalid cell",
			err:     fmt.Errorf("failed make turn: %w", apperror.ErrInvalidCell),
			status:  http.StatusUnprocessableEntity,
			message: apperror.ErrInvalidCell.Error(),
		},
		{
			name:    "unexpected failure",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			service := &stubService{view: newView("game-1"), err: tt.err}

			// When
			rec := serve(t, newTestRouter(service), http.MethodPost, "/games/game-1/turns", `{"row":1,"col":1}`)

			// Then
			assert.Equal(t, tt.status, rec.Code)

			resp := decodeError(t, rec)
			assert.Equal(t, tt.message, resp.Error)
			require.NotNil(t, resp.Game, "unchanged game is returned with the error")
			assert.Equal(t, "game-1", resp.Game.ID)
		})
	}
}

func TestResetGame(t *testing.T) {
	service := &stubService{view: newView("game-1")}

	rec := serve(t, newTestRouter(service), http.MethodPost, "/games/game-1/reset", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteGame(t *testing.T) {
	// Given
	service := &stubService{}

	// When
	rec := serve(t, newTestRouter(service), http.MethodDelete, "/games/game-1", "")

	// Then
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"game-1"}, service.deleted)
}

func TestGetStats(t *testing.T) {
	// Given
	service := &stubService{stats: &entity.Stats{Games: 3, CrossWins: 1, NaughtWins: 1, Draws: 1}}

	// When
	rec := serve(t, newTestRouter(service), http.MethodGet, "/stats", "")

	// Then
	require.Equal(t, http.StatusOK, rec.Code)

	var stats entity.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, *service.stats, stats)
}

func TestUnknownMethod(t *testing.T) {
	rec := serve(t, newTestRouter(&stubService{}), http.MethodPut, "/games/game-1", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
