package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type gameUseCase interface {
	GetGame(ctx context.Context, id string) (*entity.Game, []string, error)
	Results(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
}

type GameHandler interface {
	GetGame(w http.ResponseWriter, r *http.Request)
	Results(w http.ResponseWriter, r *http.Request)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

type gameResponse struct {
	Game     *entity.Game `json:"game"`
	Messages []string     `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	id := r.PathValue("id")

	game, messages, err := that.games.GetGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
			return
		}

		log.Error("failed to get game", "gameID", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	if messages == nil {
		messages = []string{}
	}

	writeJSON(w, http.StatusOK, gameResponse{Game: game, Messages: messages})
}

// Results lists finished games; ?limit= caps the count.
func (that *gameHandler) Results(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Results")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}

		limit = parsed
	}

	results, err := that.games.Results(r.Context(), limit)
	if err != nil {
		log.Error("failed to get results", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	if results == nil {
		results = []entity.ArchivedGame{}
	}

	writeJSON(w, http.StatusOK, results)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
