package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	actionNewGame  = "game:new"
	actionJoinGame = "game:join"
	actionTurn     = "game:turn"
	actionEvent    = "game:event"
	actionError    = "error"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Game, []string, error)
	GetGame(ctx context.Context, id string) (*entity.Game, []string, error)
	MakeMove(ctx context.Context, id string, column int) (*entity.Game, []entity.Event, error)
	Subscribe(id string) (<-chan entity.Event, func())
}

type handler func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handler),
	}

	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionJoinGame] = server.handleJoinGame
	server.handlers[actionTurn] = server.handleGameTurn

	return server
}

// Handler returns the mux serving the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(conn)
	defer client.close()

	go func() {
		if err := client.writeLoop(); err != nil {
			log.Debug("writer stopped", "error", err)
		}
	}()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(ctx, client); err != nil {
		log.Debug("connection closed", "error", err)
	}
}

// handleMessages - processes messages from the client until the connection fails.
func (that *Server) handleMessages(ctx context.Context, client *client) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, body, err := client.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			client.sendError(actionError, "malformed message")
			continue
		}

		handle, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			client.sendError(actionError, "unknown action: "+message.Action)
			continue
		}

		if err = handle(ctx, client, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// subscribe forwards the events of a game to the client. A client is
// subscribed to a game at most once.
func (that *Server) subscribe(client *client, gameID string) {
	if client.subscribed(gameID) {
		return
	}

	events, unsubscribe := that.games.Subscribe(gameID)
	client.addSubscription(gameID, unsubscribe)

	go func() {
		for event := range events {
			if !client.send(actionEvent, Payload{Event: &event}) {
				return
			}
		}
	}()
}
