package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
log-level: debug
http-port: "8080"
redis:
  host: redis
  game-ttl: 1h
game:
  rows: 6
  columns: 7
  win-length: 4
  highlight: glow
  players:
    - name: Alice
      color: red
    - name: Bob
      color: yellow
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads file values and fills defaults", func(t *testing.T) {
		// Given: a config file with a subset of the fields
		path := writeConfig(t, validConfig)

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest fall back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.GameTTL)
		assert.Equal(t, "connectfour.db", conf.SQLiteStoragePath)
		assert.Equal(t, 4, conf.Game.WinLength)
		assert.Len(t, conf.Game.Players, 2)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, validConfig)
		t.Setenv("SOCKET_PORT", "7000")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7000", conf.SocketPort)
	})

	t.Run("Fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("Fails fast on an invalid game section", func(t *testing.T) {
		// Given: a config with a single player
		path := writeConfig(t, `
game:
  players:
    - name: Alice
`)

		// When: loading it
		_, err := Load(path)

		// Then: a configuration error is returned
		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
	})

	t.Run("MustLoad panics on invalid configuration", func(t *testing.T) {
		path := writeConfig(t, "game:\n  rows: 0\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestGame_Validate(t *testing.T) {
	valid := func() Game {
		return Game{
			Rows:      6,
			Columns:   7,
			WinLength: 4,
			Players:   []Player{{Name: "Alice", Color: "red"}, {Name: "Bob", Color: "yellow"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(game *Game)
	}{
		{name: "zero rows", mutate: func(game *Game) { game.Rows = 0 }},
		{name: "negative columns", mutate: func(game *Game) { game.Columns = -3 }},
		{name: "win length exceeds both dimensions", mutate: func(game *Game) { game.WinLength = 8 }},
		{name: "win length of one", mutate: func(game *Game) { game.WinLength = 1 }},
		{name: "no players", mutate: func(game *Game) { game.Players = nil }},
		{name: "single player", mutate: func(game *Game) { game.Players = game.Players[:1] }},
		{name: "blank player name", mutate: func(game *Game) { game.Players[1].Name = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := valid()
			tt.mutate(&game)

			require.ErrorIs(t, game.Validate(), apperror.ErrInvalidConfig)
		})
	}

	t.Run("win length may fit only one dimension", func(t *testing.T) {
		game := valid()
		game.WinLength = 7

		require.NoError(t, game.Validate())
	})
}

func TestGame_Setup(t *testing.T) {
	game := Game{
		Rows:      3,
		Columns:   4,
		WinLength: 3,
		Highlight: "glow",
		Players:   []Player{{Name: "Alice", Color: "red"}, {Name: "Bot", Color: "yellow", Bot: true}},
	}

	setup := game.Setup()

	assert.Equal(t, entity.Setup{
		Rows:      3,
		Columns:   4,
		WinLength: 3,
		Highlight: "glow",
		Players:   []entity.Player{{Name: "Alice", Color: "red"}, {Name: "Bot", Color: "yellow", Bot: true}},
	}, setup)
}
