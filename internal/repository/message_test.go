package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository(t *testing.T) {
	t.Run("Append keeps messages in order", func(t *testing.T) {
		ctx, st := suite.New(t)

		messageRepo := NewMessageRepository(st.Redis, time.Hour)

		// Given: two batches of messages for the same game
		require.NoError(t, messageRepo.Append(ctx, "g1", "Welcome", "Red's turn"))
		require.NoError(t, messageRepo.Append(ctx, "g1", "Yellow's turn"))

		// When: listing them
		messages, err := messageRepo.List(ctx, "g1")

		// Then: they come back in write order and the list expires
		require.NoError(t, err)
		assert.Equal(t, []string{"Welcome", "Red's turn", "Yellow's turn"}, messages)

		ttl, err := st.Redis.TTL(ctx, "messages:g1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("Append without messages is a no-op", func(t *testing.T) {
		ctx, st := suite.New(t)

		messageRepo := NewMessageRepository(st.Redis, 0)

		require.NoError(t, messageRepo.Append(ctx, "g1"))

		exists, err := st.Redis.Exists(ctx, "messages:g1").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("List of an unknown game is empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		messageRepo := NewMessageRepository(st.Redis, 0)

		messages, err := messageRepo.List(ctx, "missing")

		require.NoError(t, err)
		assert.Empty(t, messages)
	})
}
