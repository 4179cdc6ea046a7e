package requestlog

import (
	"context"
	"time"
)

// Repo persists the append-only log of gated route calls. Rows are only
// ever counted over trailing windows, never read back individually.
type Repo interface {
	CountSince(ctx context.Context, ip, route string, since time.Time) (int, error)
	Append(ctx context.Context, ip, route string) error
}
