package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type MessageRepository interface {
	Append(ctx context.Context, gameID string, messages ...string) error
	List(ctx context.Context, gameID string) ([]string, error)
}

type dbMessages struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMessageRepository keeps each game's narration as a redis list.
func NewMessageRepository(client *redis.Client, ttl time.Duration) MessageRepository {
	return &dbMessages{
		client: client,
		ttl:    ttl,
	}
}

func messagesKey(gameID string) string {
	return "messages:" + gameID
}

func (that *dbMessages) Append(ctx context.Context, gameID string, messages ...string) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]any, len(messages))
	for i, message := range messages {
		values[i] = message
	}

	key := messagesKey(gameID)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append messages: %w", err)
	}

	return nil
}

func (that *dbMessages) List(ctx context.Context, gameID string) ([]string, error) {
	messages, err := that.client.LRange(ctx, messagesKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}
