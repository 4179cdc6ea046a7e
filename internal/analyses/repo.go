package analyses

import (
	"context"
	"encoding/json"
	"time"
)

// RecentRow is one analysis joined with its mentee's profile, as read
// back for the recent-analyses listing.
type RecentRow struct {
	ID         int64
	CreatedAt  time.Time
	Result     json.RawMessage
	MenteeName string
	TargetRole string
}

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, resumeID int64, result json.RawMessage) (int64, error)
	// CountForMenteeSince counts analyses whose resume belongs to the
	// mentee, created at or after the given time. Feeds quota checks.
	CountForMenteeSince(ctx context.Context, menteeID int64, since time.Time) (int, error)
	// RecentByEmail lists the mentee's analyses newest-first.
	RecentByEmail(ctx context.Context, email string, limit int) ([]RecentRow, error)
}
