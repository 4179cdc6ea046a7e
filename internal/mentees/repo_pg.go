package mentees

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByEmail fetches a mentee by email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Mentee, error) {
	const query = `
SELECT id, email, COALESCE(name, ''), COALESCE(target_role, ''), created_at
FROM mentees
WHERE email = $1
LIMIT 1`
	var m Mentee
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&m.ID,
		&m.Email,
		&m.Name,
		&m.TargetRole,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Mentee{}, ErrNotFound
		}
		return Mentee{}, err
	}
	return m, nil
}

// Upsert inserts the mentee or refreshes name/target role without
// letting blank input clobber stored values.
func (r *PGRepo) Upsert(ctx context.Context, email, name, targetRole string) (int64, error) {
	const query = `
INSERT INTO mentees (email, name, target_role)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
ON CONFLICT (email) DO UPDATE SET
  name = COALESCE(NULLIF(EXCLUDED.name, ''), mentees.name),
  target_role = COALESCE(NULLIF(EXCLUDED.target_role, ''), mentees.target_role)
RETURNING id`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, email, name, targetRole).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

var _ Repo = (*PGRepo)(nil)
