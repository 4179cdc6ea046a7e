package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an analysis row and returns its id.
func (r *PGRepo) Create(ctx context.Context, resumeID int64, result json.RawMessage) (int64, error) {
	const query = `
INSERT INTO analyses (resume_id, result)
VALUES ($1, $2)
RETURNING id`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, resumeID, []byte(result)).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// CountForMenteeSince counts the mentee's analyses created in a window.
func (r *PGRepo) CountForMenteeSince(ctx context.Context, menteeID int64, since time.Time) (int, error) {
	const query = `
SELECT COUNT(*)
FROM analyses a
JOIN resumes r ON a.resume_id = r.id
WHERE r.mentee_id = $1 AND a.created_at >= $2`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, menteeID, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// RecentByEmail lists a mentee's analyses newest-first, joined through
// resumes to the mentee profile.
func (r *PGRepo) RecentByEmail(ctx context.Context, email string, limit int) ([]RecentRow, error) {
	const query = `
SELECT a.id, a.created_at, a.result, COALESCE(m.name, ''), COALESCE(m.target_role, '')
FROM analyses a
JOIN resumes r ON a.resume_id = r.id
JOIN mentees m ON r.mentee_id = m.id
WHERE m.email = $1
ORDER BY a.created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, email, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentRow
	for rows.Next() {
		var row RecentRow
		var result []byte
		if err := rows.Scan(&row.ID, &row.CreatedAt, &result, &row.MenteeName, &row.TargetRole); err != nil {
			return nil, err
		}
		row.Result = json.RawMessage(result)
		out = append(out, row)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
