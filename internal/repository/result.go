package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result entity.ArchivedGame) error
	Recent(ctx context.Context, limit int) ([]entity.ArchivedGame, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

func (that *resultRepository) Save(ctx context.Context, result entity.ArchivedGame) error {
	query := `INSERT INTO finished_games
		(game_id, result, winner_name, winner_color, moves, board_rows, board_cols, win_length, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(game_id) DO NOTHING`

	_, err := that.conn.ExecContext(ctx, query,
		result.GameID,
		result.Result,
		result.WinnerName,
		result.WinnerColor,
		result.Moves,
		result.Rows,
		result.Columns,
		result.WinLength,
		result.FinishedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

// Recent returns up to limit archived games, newest first.
func (that *resultRepository) Recent(ctx context.Context, limit int) ([]entity.ArchivedGame, error) {
	if limit <= 0 {
		return []entity.ArchivedGame{}, nil
	}

	query := `SELECT game_id, result, winner_name, winner_color, moves, board_rows, board_cols, win_length, finished_at
		FROM finished_games
		ORDER BY finished_at DESC, game_id
		LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't query results: %w", err)
	}
	defer rows.Close()

	results := []entity.ArchivedGame{}
	for rows.Next() {
		var (
			result     entity.ArchivedGame
			finishedAt int64
		)

		if err = rows.Scan(
			&result.GameID,
			&result.Result,
			&result.WinnerName,
			&result.WinnerColor,
			&result.Moves,
			&result.Rows,
			&result.Columns,
			&result.WinLength,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		result.FinishedAt = time.UnixMilli(finishedAt).UTC()
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}
