package mentees

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo implements Repo in process memory, used when no database
// is configured.
type MemoryRepo struct {
	mu      sync.Mutex
	byEmail map[string]*Mentee
	nextID  int64
}

// NewMemoryRepo constructs an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byEmail: make(map[string]*Mentee), nextID: 1}
}

// GetByEmail fetches a mentee by email.
func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Mentee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.byEmail[email]; ok {
		return *m, nil
	}
	return Mentee{}, ErrNotFound
}

// Upsert inserts or updates a mentee under the non-blank-wins policy.
func (r *MemoryRepo) Upsert(ctx context.Context, email, name, targetRole string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.byEmail[email]; ok {
		if name != "" {
			m.Name = name
		}
		if targetRole != "" {
			m.TargetRole = targetRole
		}
		return m.ID, nil
	}

	m := &Mentee{
		ID:         r.nextID,
		Email:      email,
		Name:       name,
		TargetRole: targetRole,
		CreatedAt:  time.Now().UTC(),
	}
	r.nextID++
	r.byEmail[email] = m
	return m.ID, nil
}

// LookupEmail resolves an email to mentee id and profile fields. Used by
// the in-memory analyses repo in place of a SQL join.
func (r *MemoryRepo) LookupEmail(email string) (id int64, name, targetRole string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, found := r.byEmail[email]; found {
		return m.ID, m.Name, m.TargetRole, true
	}
	return 0, "", "", false
}

var _ Repo = (*MemoryRepo)(nil)
