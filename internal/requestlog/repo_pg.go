package requestlog

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CountSince counts log rows for an ip+route pair inside the window.
func (r *PGRepo) CountSince(ctx context.Context, ip, route string, since time.Time) (int, error) {
	const query = `
SELECT COUNT(*)
FROM request_logs
WHERE ip = $1 AND route = $2 AND created_at >= $3`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, ip, route, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Append inserts a log row for the given ip+route pair.
func (r *PGRepo) Append(ctx context.Context, ip, route string) error {
	const query = `INSERT INTO request_logs (ip, route) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, ip, route)
	return err
}

var _ Repo = (*PGRepo)(nil)
