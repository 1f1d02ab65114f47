package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	ResultWin  = "win"
	ResultDraw = "draw"

	NoPlayer = -1

	MinPlayers   = 2
	MinWinLength = 2
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Setup describes a game before it exists.
type Setup struct {
	Rows      int
	Columns   int
	WinLength int
	Highlight string
	Players   []Player
}

type Game struct {
	ID           string    `json:"id"`
	Board        *Board    `json:"board"`
	Players      []Player  `json:"players"`
	ActivePlayer int       `json:"active_player"`
	WinLength    int       `json:"win_length"`
	Highlight    string    `json:"highlight,omitempty"`
	Status       string    `json:"status"`
	Result       string    `json:"result,omitempty"`
	Winner       int       `json:"winner"`
	WinningLine  []int     `json:"winning_line,omitempty"`
	Moves        int       `json:"moves"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewGame(id string, setup Setup) (*Game, error) {
	if len(setup.Players) < MinPlayers {
		return nil, fmt.Errorf("%w: need at least %d players, got %d", apperror.ErrInvalidConfig, MinPlayers, len(setup.Players))
	}

	if setup.WinLength < MinWinLength || (setup.WinLength > setup.Rows && setup.WinLength > setup.Columns) {
		return nil, fmt.Errorf("%w: win length %d on %dx%d board",
			apperror.ErrInvalidConfig, setup.WinLength, setup.Rows, setup.Columns)
	}

	board, err := NewBoard(setup.Rows, setup.Columns)
	if err != nil {
		return nil, err
	}

	players := make([]Player, len(setup.Players))
	copy(players, setup.Players)

	return &Game{
		ID:           id,
		Board:        board,
		Players:      players,
		ActivePlayer: NoPlayer,
		WinLength:    setup.WinLength,
		Highlight:    setup.Highlight,
		Status:       StatusWaiting,
		Winner:       NoPlayer,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Result == ResultDraw
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameAlreadyFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Active returns the player whose turn it is.
func (that *Game) Active() Player {
	return that.Players[that.ActivePlayer]
}

// WinnerPlayer returns the winning player, if any.
func (that *Game) WinnerPlayer() (Player, bool) {
	if that.Winner < 0 || that.Winner >= len(that.Players) {
		return Player{}, false
	}

	return that.Players[that.Winner], true
}
