package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"connectfour.db"`
	Game              Game   `yaml:"game"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

type Game struct {
	Rows      int      `yaml:"rows" env:"GAME_ROWS" env-default:"6"`
	Columns   int      `yaml:"columns" env:"GAME_COLUMNS" env-default:"7"`
	WinLength int      `yaml:"win-length" env:"GAME_WIN_LENGTH" env-default:"4"`
	Highlight string   `yaml:"highlight" env:"GAME_HIGHLIGHT"`
	Players   []Player `yaml:"players"`
}

type Player struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Bot   bool   `yaml:"bot"`
}

// Load reads the config file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	return that.Game.Validate()
}

func (that *Game) Validate() error {
	if that.Rows <= 0 || that.Columns <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", apperror.ErrInvalidConfig, that.Rows, that.Columns)
	}

	if that.WinLength < entity.MinWinLength || (that.WinLength > that.Rows && that.WinLength > that.Columns) {
		return fmt.Errorf("%w: win length %d does not fit a %dx%d board", apperror.ErrInvalidConfig, that.WinLength, that.Rows, that.Columns)
	}

	if len(that.Players) < entity.MinPlayers {
		return fmt.Errorf("%w: need at least %d players, got %d", apperror.ErrInvalidConfig, entity.MinPlayers, len(that.Players))
	}

	for i, player := range that.Players {
		if strings.TrimSpace(player.Name) == "" {
			return fmt.Errorf("%w: player %d has no name", apperror.ErrInvalidConfig, i)
		}
	}

	return nil
}

// Setup converts the game section into the setup a new game is built from.
func (that *Game) Setup() entity.Setup {
	players := make([]entity.Player, 0, len(that.Players))
	for _, player := range that.Players {
		players = append(players, entity.Player{Name: player.Name, Color: player.Color, Bot: player.Bot})
	}

	return entity.Setup{
		Rows:      that.Rows,
		Columns:   that.Columns,
		WinLength: that.WinLength,
		Highlight: that.Highlight,
		Players:   players,
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
