package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	outboxSize     = 64
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	GameID   string        `json:"game_id,omitempty"`
	Column   *int          `json:"column,omitempty"`
	Game     *entity.Game  `json:"game,omitempty"`
	Messages []string      `json:"messages,omitempty"`
	Event    *entity.Event `json:"event,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// client owns one connection. Reads happen on the connection goroutine,
// every write goes through the outbox and writeLoop.
type client struct {
	conn   *websocket.Conn
	outbox chan Message
	done   chan struct{}
	once   sync.Once

	mu            sync.Mutex
	subscriptions map[string]func()
}

func newClient(conn *websocket.Conn) *client {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	return &client{
		conn:          conn,
		outbox:        make(chan Message, outboxSize),
		done:          make(chan struct{}),
		subscriptions: make(map[string]func()),
	}
}

// send queues a message; it reports false once the client is closed.
func (that *client) send(action string, payload Payload) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		return false
	}

	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.outbox <- Message{Action: action, Payload: body}:
		return true
	case <-that.done:
		return false
	}
}

func (that *client) sendError(action, text string) {
	that.send(action, Payload{Error: text})
}

func (that *client) writeLoop() error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer that.close()

	for {
		select {
		case message := <-that.outbox:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteJSON(message); err != nil {
				return fmt.Errorf("failed to write message: %w", err)
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return fmt.Errorf("failed to write ping: %w", err)
			}
		case <-that.done:
			return nil
		}
	}
}

func (that *client) subscribed(gameID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.subscriptions[gameID]

	return ok
}

func (that *client) addSubscription(gameID string, unsubscribe func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	select {
	case <-that.done:
		unsubscribe()
		return
	default:
	}

	that.subscriptions[gameID] = unsubscribe
}

// close ends every subscription and the connection; safe to call repeatedly.
func (that *client) close() {
	that.once.Do(func() {
		close(that.done)

		that.mu.Lock()
		for gameID, unsubscribe := range that.subscriptions {
			unsubscribe()
			delete(that.subscriptions, gameID)
		}
		that.mu.Unlock()

		_ = that.conn.Close()
	})
}
