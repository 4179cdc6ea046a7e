package resumes

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume row and returns its id.
func (r *PGRepo) Create(ctx context.Context, rec Resume) (int64, error) {
	const query = `
INSERT INTO resumes (mentee_id, file_url, file_type, text_content)
VALUES ($1, $2, $3, NULLIF($4, ''))
RETURNING id`
	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		rec.MenteeID,
		rec.FileURL,
		rec.FileType,
		rec.TextContent,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

var _ Repo = (*PGRepo)(nil)
