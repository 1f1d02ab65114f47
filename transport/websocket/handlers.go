package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

func (that *Server) handleNewGame(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleNewGame")

	game, messages, err := that.games.NewGame(ctx)
	if err != nil {
		client.sendError(msg.Action, "failed to create a new game")
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.subscribe(client, game.ID)
	client.send(msg.Action, Payload{Game: game, Messages: messages})

	log.Info("game created", "gameID", game.ID)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleJoinGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		client.sendError(msg.Action, "malformed payload")
		return err
	}

	if payloadReq.GameID == "" {
		client.sendError(msg.Action, "game_id is required")
		return nil
	}

	game, messages, err := that.games.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		client.sendError(msg.Action, errorText(payloadReq.GameID, err))
		return fmt.Errorf("failed to join game: %w", err)
	}

	that.subscribe(client, game.ID)
	client.send(msg.Action, Payload{Game: game, Messages: messages})

	log.Info("client joined game", "gameID", game.ID)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		client.sendError(msg.Action, "malformed payload")
		return err
	}

	if payloadReq.GameID == "" || payloadReq.Column == nil {
		client.sendError(msg.Action, "game_id and column are required")
		return nil
	}

	game, _, err := that.games.MakeMove(ctx, payloadReq.GameID, *payloadReq.Column)
	if err != nil {
		client.send(msg.Action, Payload{Game: game, Error: errorText(payloadReq.GameID, err)})

		if isRuleViolation(err) {
			log.Debug("move rejected", "gameID", payloadReq.GameID, "error", err)
			return nil
		}

		return fmt.Errorf("failed to make move: %w", err)
	}

	client.send(msg.Action, Payload{Game: game})

	return nil
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}

func isRuleViolation(err error) bool {
	return errors.Is(err, apperror.ErrColumnFull) ||
		errors.Is(err, apperror.ErrInvalidColumn) ||
		errors.Is(err, apperror.ErrGameAlreadyFinished) ||
		errors.Is(err, apperror.ErrGameIsNotStarted)
}

// errorText keeps internal failures out of client replies.
func errorText(gameID string, err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return fmt.Sprintf("game %s: %v", gameID, apperror.ErrGameNotFound)
	case errors.Is(err, apperror.ErrColumnFull):
		return apperror.ErrColumnFull.Error()
	case errors.Is(err, apperror.ErrInvalidColumn):
		return apperror.ErrInvalidColumn.Error()
	case errors.Is(err, apperror.ErrGameAlreadyFinished):
		return apperror.ErrGameAlreadyFinished.Error()
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return apperror.ErrGameIsNotStarted.Error()
	default:
		return "internal error"
	}
}
