package requestlog

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	ip        string
	route     string
	createdAt time.Time
}

// MemoryRepo implements Repo in process memory, used when no database
// is configured.
type MemoryRepo struct {
	mu      sync.Mutex
	entries []memoryEntry

	// Now is overridable in tests.
	Now func() time.Time
}

// NewMemoryRepo constructs an empty in-memory log.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{Now: time.Now}
}

// CountSince counts entries for an ip+route pair inside the window.
func (r *MemoryRepo) CountSince(ctx context.Context, ip, route string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, e := range r.entries {
		if e.ip == ip && e.route == route && !e.createdAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// Append records a log entry.
func (r *MemoryRepo) Append(ctx context.Context, ip, route string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, memoryEntry{ip: ip, route: route, createdAt: r.Now()})
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
