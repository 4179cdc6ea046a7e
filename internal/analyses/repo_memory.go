package analyses

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// ResumeDirectory resolves a resume to its owning mentee, standing in
// for the analyses->resumes join when running without a database.
type ResumeDirectory interface {
	Owner(resumeID int64) (menteeID int64, ok bool)
}

// MenteeDirectory resolves an email to a mentee profile, standing in
// for the resumes->mentees join when running without a database.
type MenteeDirectory interface {
	LookupEmail(email string) (id int64, name, targetRole string, ok bool)
}

type memoryRow struct {
	id        int64
	resumeID  int64
	menteeID  int64
	result    json.RawMessage
	createdAt time.Time
}

// MemoryRepo implements Repo in process memory, used when no database
// is configured.
type MemoryRepo struct {
	mu      sync.Mutex
	rows    []memoryRow
	nextID  int64
	resumes ResumeDirectory
	mentees MenteeDirectory

	// Now is overridable in tests.
	Now func() time.Time
}

// NewMemoryRepo constructs an in-memory repo wired to its sibling
// in-memory stores.
func NewMemoryRepo(resumes ResumeDirectory, mentees MenteeDirectory) *MemoryRepo {
	return &MemoryRepo{nextID: 1, resumes: resumes, mentees: mentees, Now: time.Now}
}

// Create stores an analysis row and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, resumeID int64, result json.RawMessage) (int64, error) {
	menteeID, _ := r.resumes.Owner(resumeID)

	r.mu.Lock()
	defer r.mu.Unlock()
	row := memoryRow{
		id:        r.nextID,
		resumeID:  resumeID,
		menteeID:  menteeID,
		result:    append(json.RawMessage(nil), result...),
		createdAt: r.Now(),
	}
	r.nextID++
	r.rows = append(r.rows, row)
	return row.id, nil
}

// CountForMenteeSince counts the mentee's analyses created in a window.
func (r *MemoryRepo) CountForMenteeSince(ctx context.Context, menteeID int64, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, row := range r.rows {
		if row.menteeID == menteeID && !row.createdAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// RecentByEmail lists a mentee's analyses newest-first.
func (r *MemoryRepo) RecentByEmail(ctx context.Context, email string, limit int) ([]RecentRow, error) {
	menteeID, name, targetRole, ok := r.mentees.LookupEmail(email)
	if !ok {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var out []RecentRow
	for _, row := range r.rows {
		if row.menteeID != menteeID {
			continue
		}
		out = append(out, RecentRow{
			ID:         row.id,
			CreatedAt:  row.createdAt,
			Result:     row.result,
			MenteeName: name,
			TargetRole: targetRole,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
