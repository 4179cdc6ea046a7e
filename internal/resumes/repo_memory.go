package resumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo implements Repo in process memory, used when no database
// is configured.
type MemoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]Resume
	nextID int64
}

// NewMemoryRepo constructs an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[int64]Resume), nextID: 1}
}

// Create stores a resume row and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, rec Resume) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.nextID++
	r.rows[rec.ID] = rec
	return rec.ID, nil
}

// Get returns a stored row by id.
func (r *MemoryRepo) Get(id int64) (Resume, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[id]
	return rec, ok
}

// Owner resolves a resume id to its mentee id. Used by the in-memory
// analyses repo in place of a SQL join.
func (r *MemoryRepo) Owner(resumeID int64) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.rows[resumeID]
	if !ok {
		return 0, false
	}
	return rec.MenteeID, true
}

var _ Repo = (*MemoryRepo)(nil)
