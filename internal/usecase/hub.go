package usecase

import (
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const defaultSubscriberBuffer = 64

// Hub fans game events out to subscribers. A subscriber that falls behind by
// more than its buffer misses events instead of blocking the publisher.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[chan entity.Event]struct{}
	buffer      int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	return &Hub{
		subscribers: make(map[string]map[chan entity.Event]struct{}),
		buffer:      buffer,
	}
}

// Subscribe returns the event stream of a game and a func that ends the
// subscription and closes the stream. The func may be called more than once.
func (that *Hub) Subscribe(gameID string) (<-chan entity.Event, func()) {
	ch := make(chan entity.Event, that.buffer)

	that.mu.Lock()
	if that.subscribers[gameID] == nil {
		that.subscribers[gameID] = make(map[chan entity.Event]struct{})
	}
	that.subscribers[gameID][ch] = struct{}{}
	that.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			that.mu.Lock()
			defer that.mu.Unlock()

			delete(that.subscribers[gameID], ch)
			if len(that.subscribers[gameID]) == 0 {
				delete(that.subscribers, gameID)
			}

			close(ch)
		})
	}

	return ch, unsubscribe
}

func (that *Hub) Publish(gameID string, events ...entity.Event) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for ch := range that.subscribers[gameID] {
		for _, event := range events {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

func (that *Hub) Subscribers(gameID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.subscribers[gameID])
}
