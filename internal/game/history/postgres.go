package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS match_results (
	id          BIGSERIAL PRIMARY KEY,
	room_id     TEXT        NOT NULL,
	winner_id   TEXT        NOT NULL DEFAULT '',
	winner_name TEXT        NOT NULL DEFAULT '',
	players     TEXT[]      NOT NULL,
	rounds      INTEGER     NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
)`

type pgRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder creates the match_results table if needed.
func NewPostgresRecorder(ctx context.Context, db *sql.DB) (Recorder, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create match_results: %w", err)
	}
	return &pgRecorder{db: db}, nil
}

func (p *pgRecorder) Record(ctx context.Context, res MatchResult) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO match_results (room_id, winner_id, winner_name, players, rounds, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.RoomID, res.WinnerID, res.WinnerName, pq.Array(res.Players), res.Rounds, res.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert match result %s: %w", res.RoomID, err)
	}
	return nil
}

func (p *pgRecorder) Recent(ctx context.Context, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := p.db.QueryContext(ctx,
		`SELECT room_id, winner_id, winner_name, players, rounds, finished_at
		 FROM match_results ORDER BY finished_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchResult
	for rows.Next() {
		var r MatchResult
		if err := rows.Scan(&r.RoomID, &r.WinnerID, &r.WinnerName, pq.Array(&r.Players), &r.Rounds, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
