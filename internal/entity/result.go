package entity

import "time"

// ArchivedGame is the summary kept for a finished game.
type ArchivedGame struct {
	GameID      string    `json:"game_id"`
	Result      string    `json:"result"`
	WinnerName  string    `json:"winner_name,omitempty"`
	WinnerColor string    `json:"winner_color,omitempty"`
	Moves       int       `json:"moves"`
	Rows        int       `json:"rows"`
	Columns     int       `json:"columns"`
	WinLength   int       `json:"win_length"`
	FinishedAt  time.Time `json:"finished_at"`
}

func NewArchivedGame(game *Game, finishedAt time.Time) ArchivedGame {
	archived := ArchivedGame{
		GameID:     game.ID,
		Result:     game.Result,
		Moves:      game.Moves,
		Rows:       game.Board.Rows,
		Columns:    game.Board.Columns,
		WinLength:  game.WinLength,
		FinishedAt: finishedAt.UTC(),
	}

	if winner, ok := game.WinnerPlayer(); ok {
		archived.WinnerName = winner.Name
		archived.WinnerColor = winner.Color
	}

	return archived
}
