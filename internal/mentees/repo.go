package mentees

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "mentee not found" }

// Repo defines persistence operations for mentees.
type Repo interface {
	GetByEmail(ctx context.Context, email string) (Mentee, error)
	// Upsert creates the mentee or updates name/target role. Blank
	// values never overwrite stored non-blank ones. Returns the
	// mentee's id.
	Upsert(ctx context.Context, email, name, targetRole string) (int64, error)
}
