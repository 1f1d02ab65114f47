package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/messagelog"
	"github.com/rocketscienceinc/connectfour-backend/internal/service"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type messageRepo interface {
	Append(ctx context.Context, gameID string, messages ...string) error
	List(ctx context.Context, gameID string) ([]string, error)
}

type resultRepo interface {
	Save(ctx context.Context, result entity.ArchivedGame) error
	Recent(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
}

type Option func(*GameManager)

func WithIDGenerator(newID func() string) Option {
	return func(that *GameManager) {
		that.newID = newID
	}
}

// WithControllerOptions passes options to every controller the manager builds.
func WithControllerOptions(opts ...connectfour.Option) Option {
	return func(that *GameManager) {
		that.controllerOpts = append(that.controllerOpts, opts...)
	}
}

// WithBot replaces the service that plays bot seats.
func WithBot(bot service.BotService) Option {
	return func(that *GameManager) {
		that.bot = bot
	}
}

func WithClock(now func() time.Time) Option {
	return func(that *GameManager) {
		that.now = now
	}
}

// GameManager runs games on top of the repositories. Moves are serialised so
// a game only ever has one mutator.
type GameManager struct {
	logger *slog.Logger
	setup  entity.Setup

	gameRepo    gameRepo
	messageRepo messageRepo
	resultRepo  resultRepo
	hub         *Hub
	bot         service.BotService

	newID          func() string
	now            func() time.Time
	controllerOpts []connectfour.Option

	mu sync.Mutex
}

func NewGameManager(
	logger *slog.Logger,
	setup entity.Setup,
	gameRepo gameRepo,
	messageRepo messageRepo,
	resultRepo resultRepo,
	hub *Hub,
	opts ...Option,
) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		setup:  setup,

		gameRepo:    gameRepo,
		messageRepo: messageRepo,
		resultRepo:  resultRepo,
		hub:         hub,
		bot:         service.NewBotService(nil),

		newID: uuid.NewString,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// NewGame creates and starts a game from the configured setup. Bots seated
// before the first human have already moved when it returns.
func (that *GameManager) NewGame(ctx context.Context) (*entity.Game, []string, error) {
	game, err := entity.NewGame(that.newID(), that.setup)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create game: %w", err)
	}

	log := messagelog.New()
	controller := that.controller(game, log)

	if err = controller.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err = that.playBots(controller); err != nil {
		return nil, nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, nil, err
	}

	if err = that.messageRepo.Append(ctx, game.ID, log.Messages()...); err != nil {
		// a game without its opening narration is not handed out
		if delErr := that.gameRepo.DeleteByID(ctx, game.ID); delErr != nil {
			that.logger.Error("failed to roll back game", "game_id", game.ID, "error", delErr)
		}

		return nil, nil, fmt.Errorf("failed to save messages: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "first_player", game.ActivePlayer)

	if game.IsFinished() {
		that.archive(ctx, game)
	}

	return game, log.Messages(), nil
}

// GetGame returns the game state together with its message log.
func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, []string, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	messages, err := that.messageRepo.List(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return game, messages, nil
}

// MakeMove drops a piece for the active player. A full column is reported
// with apperror.ErrColumnFull together with the game and the emitted events.
func (that *GameManager) MakeMove(ctx context.Context, id string, column int) (*entity.Game, []entity.Event, error) {
	log := that.logger.With("method", "MakeMove", "game_id", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var events []entity.Event
	controller := that.controller(game, connectfour.ListenerFunc(func(event entity.Event) {
		events = append(events, event)
	}))

	_, moveErr := controller.ApplyMove(column)
	if moveErr != nil && !errors.Is(moveErr, apperror.ErrColumnFull) {
		return nil, nil, fmt.Errorf("failed to make move: %w", moveErr)
	}

	if moveErr == nil {
		if err = that.playBots(controller); err != nil {
			return nil, nil, err
		}
	}

	if err = that.messageRepo.Append(ctx, game.ID, messagesOf(events)...); err != nil {
		return nil, nil, fmt.Errorf("failed to save messages: %w", err)
	}

	if moveErr == nil {
		if err = that.updateGame(ctx, game); err != nil {
			return nil, nil, err
		}
	}

	that.hub.Publish(game.ID, events...)
	log.Debug("events published", "events", len(events), "subscribers", that.hub.Subscribers(game.ID))

	if moveErr != nil {
		log.Debug("invalid move", "column", column)
		return game, events, fmt.Errorf("failed to make move: %w", moveErr)
	}

	if game.IsFinished() {
		that.archive(ctx, game)
	}

	return game, events, nil
}

func (that *GameManager) Subscribe(id string) (<-chan entity.Event, func()) {
	return that.hub.Subscribe(id)
}

// Results returns recently finished games, newest first. limit is capped at
// maxResultsLimit.
func (that *GameManager) Results(ctx context.Context, limit int) ([]entity.ArchivedGame, error) {
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	limit = min(limit, maxResultsLimit)

	results, err := that.resultRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	return results, nil
}

func (that *GameManager) controller(game *entity.Game, listener connectfour.Listener) *connectfour.GameController {
	opts := make([]connectfour.Option, 0, len(that.controllerOpts)+1)
	opts = append(opts, that.controllerOpts...)
	opts = append(opts, connectfour.WithListener(listener))

	return connectfour.NewGameController(game, opts...)
}

// playBots moves for bot seats until a human is active or the game ends.
func (that *GameManager) playBots(controller *connectfour.GameController) error {
	game := controller.Game()

	for game.IsOngoing() && game.Active().IsBot() {
		column, err := that.bot.ChooseColumn(game)
		if err != nil {
			return fmt.Errorf("bot failed to choose column: %w", err)
		}

		if _, err = controller.ApplyMove(column); err != nil {
			return fmt.Errorf("bot failed to make move: %w", err)
		}
	}

	return nil
}

// archive failures are logged; the move itself already succeeded.
func (that *GameManager) archive(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "archive", "game_id", game.ID)

	if err := that.resultRepo.Save(ctx, entity.NewArchivedGame(game, that.now())); err != nil {
		log.Error("failed to archive game", "error", err)
		return
	}

	log.Info("game finished", "result", game.Result, "winner", game.Winner, "moves", game.Moves)
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func messagesOf(events []entity.Event) []string {
	var messages []string
	for _, event := range events {
		if event.Kind == entity.EventMessage {
			messages = append(messages, event.Message)
		}
	}

	return messages
}
