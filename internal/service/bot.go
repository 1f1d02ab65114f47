package service

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var (
	ErrNotBotTurn       = errors.New("active player is not a bot")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	ChooseColumn(game *entity.Game) (int, error)
}

type botService struct {
	intn func(n int) int
}

// NewBotService returns a bot that drops into a random open column. intn
// defaults to math/rand.
func NewBotService(intn func(n int) int) BotService {
	if intn == nil {
		intn = rand.Intn //nolint: gosec // it's ok
	}

	return &botService{intn: intn}
}

func (that *botService) ChooseColumn(game *entity.Game) (int, error) {
	if !game.IsOngoing() || !game.Active().IsBot() {
		return 0, ErrNotBotTurn
	}

	availableColumns := make([]int, 0, game.Board.Columns)
	for column := 0; column < game.Board.Columns; column++ {
		if _, ok := game.Board.FindFirstUnoccupied(column); ok {
			availableColumns = append(availableColumns, column)
		}
	}

	if len(availableColumns) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableColumns[that.intn(len(availableColumns))], nil
}
