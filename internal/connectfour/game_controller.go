package connectfour

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	MessageWelcome     = "Welcome"
	MessageInvalidMove = "Invalid move"
	MessageDraw        = "<strong>Draw!</strong>"
)

func TurnMessage(player entity.Player) string {
	return player.Name + "'s turn"
}

func WinMessage(player entity.Player) string {
	return "<strong>" + player.Name + " wins!</strong>"
}

// Listener receives every event the controller emits, in emission order.
type Listener interface {
	Handle(event entity.Event)
}

type ListenerFunc func(event entity.Event)

func (f ListenerFunc) Handle(event entity.Event) {
	f(event)
}

// Outcome describes an accepted move.
type Outcome struct {
	Cell   int
	Player int
	Result string
	Line   []int
}

type Option func(*GameController)

func WithListener(listener Listener) Option {
	return func(that *GameController) {
		that.listeners = append(that.listeners, listener)
	}
}

// WithRandom replaces the source used to pick the opening player; intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(that *GameController) {
		that.intn = intn
	}
}

// GameController drives the turn state machine of one game. It is not safe for
// concurrent use; callers serialise moves.
type GameController struct {
	game      *entity.Game
	listeners []Listener
	intn      func(n int) int
}

func NewGameController(game *entity.Game, opts ...Option) *GameController {
	controller := &GameController{
		game: game,
		intn: rand.Intn, //nolint: gosec // picking who moves first
	}

	for _, opt := range opts {
		opt(controller)
	}

	return controller
}

func (that *GameController) Game() *entity.Game {
	return that.game
}

// Start picks the opening player at random and opens the game.
func (that *GameController) Start() error {
	if !that.game.IsWaiting() {
		return fmt.Errorf("%w: status %s", apperror.ErrGameAlreadyStarted, that.game.Status)
	}

	that.game.ActivePlayer = that.intn(len(that.game.Players))
	that.game.Status = entity.StatusOngoing

	that.message(MessageWelcome)
	that.message(TurnMessage(that.game.Active()))

	return nil
}

// ApplyMove drops a piece for the active player into column.
func (that *GameController) ApplyMove(column int) (Outcome, error) {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return Outcome{}, err
	}

	board := that.game.Board
	if !board.ValidColumn(column) {
		return Outcome{}, fmt.Errorf("%w: column %d", apperror.ErrInvalidColumn, column)
	}

	cell, ok := board.FindFirstUnoccupied(column)
	if !ok {
		that.message(MessageInvalidMove)
		return Outcome{}, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	player := that.game.ActivePlayer
	if err := board.Occupy(cell, player); err != nil {
		return Outcome{}, fmt.Errorf("failed to occupy cell: %w", err)
	}

	that.game.Moves++
	that.emit(entity.Event{
		Kind:   entity.EventCellOccupied,
		Cell:   cell,
		Player: player,
		Color:  that.game.Players[player].Color,
	})

	outcome := Outcome{Cell: cell, Player: player}

	if line := FindWinningLine(board, cell, that.game.WinLength, player); line != nil {
		that.finish(entity.ResultWin, player, line)

		that.emit(entity.Event{
			Kind:   entity.EventWinHighlight,
			Player: player,
			Line:   line,
			Style:  that.game.Highlight,
		})
		that.message(WinMessage(that.game.Players[player]))

		outcome.Result = entity.ResultWin
		outcome.Line = line

		return outcome, nil
	}

	if board.IsFull() {
		that.finish(entity.ResultDraw, entity.NoPlayer, nil)
		that.message(MessageDraw)

		outcome.Result = entity.ResultDraw

		return outcome, nil
	}

	that.game.ActivePlayer = (player + 1) % len(that.game.Players)
	that.message(TurnMessage(that.game.Active()))

	return outcome, nil
}

func (that *GameController) finish(result string, winner int, line []int) {
	that.game.Status = entity.StatusFinished
	that.game.Result = result
	that.game.Winner = winner
	that.game.WinningLine = line
}

func (that *GameController) message(text string) {
	that.emit(entity.Event{Kind: entity.EventMessage, Message: text})
}

func (that *GameController) emit(event entity.Event) {
	event.GameID = that.game.ID

	for _, listener := range that.listeners {
		listener.Handle(event)
	}
}
