package quota

import (
	"context"
	"errors"
	"time"

	"mentorcv-backend/internal/shared/telemetry"
)

// Sentinel errors returned when a caller exceeds a window. Handlers map
// them to HTTP statuses; everything else from the guard is fail-open.
var (
	ErrIPLimit      = errors.New("quota: ip rate limit exceeded")
	ErrMonthlyLimit = errors.New("quota: monthly limit exceeded")
	ErrHourlyLimit  = errors.New("quota: hourly limit exceeded")
)

const (
	// IPLimitPerHour caps uploads per client address per rolling hour.
	IPLimitPerHour = 10
	// MonthlyLimitPerMentee caps analyses per mentee per calendar month.
	MonthlyLimitPerMentee = 5
	// HourlyLimitPerMentee caps analyses per mentee per rolling hour.
	HourlyLimitPerMentee = 2

	maxIPLen = 64
)

// RequestLogStore is the slice of the request log the guard needs.
type RequestLogStore interface {
	CountSince(ctx context.Context, ip, route string, since time.Time) (int, error)
	Append(ctx context.Context, ip, route string) error
}

// AnalysisCounter counts a mentee's analyses inside a window.
type AnalysisCounter interface {
	CountForMenteeSince(ctx context.Context, menteeID int64, since time.Time) (int, error)
}

// Guard enforces the upload quotas. Store failures never block a
// request; the guard logs and lets the caller through.
type Guard struct {
	Requests RequestLogStore
	Analyses AnalysisCounter

	// now is overridable in tests.
	now func() time.Time
}

// NewGuard constructs a Guard.
func NewGuard(requests RequestLogStore, analyses AnalysisCounter) *Guard {
	return &Guard{Requests: requests, Analyses: analyses, now: time.Now}
}

// CheckIP enforces the per-address rolling-hour limit for a route.
func (g *Guard) CheckIP(ctx context.Context, ip, route string) error {
	ip = truncateIP(ip)
	since := g.now().Add(-time.Hour)

	count, err := g.Requests.CountSince(ctx, ip, route, since)
	if err != nil {
		telemetry.Warn("request log count failed", map[string]any{"error": err.Error()})
		return nil
	}
	if count >= IPLimitPerHour {
		return ErrIPLimit
	}
	return nil
}

// RecordRequest appends a request log entry. Failures are logged and
// swallowed; logging must never block an upload.
func (g *Guard) RecordRequest(ctx context.Context, ip, route string) {
	if err := g.Requests.Append(ctx, truncateIP(ip), route); err != nil {
		telemetry.Warn("request log append failed", map[string]any{"error": err.Error()})
	}
}

// CheckMentee enforces the per-mentee monthly and hourly limits, in
// that order. Only called for mentees that already exist.
func (g *Guard) CheckMentee(ctx context.Context, menteeID int64) error {
	now := g.now()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, err := g.Analyses.CountForMenteeSince(ctx, menteeID, monthStart)
	if err != nil {
		telemetry.Warn("monthly analysis count failed", map[string]any{"error": err.Error()})
		return nil
	}
	if monthly >= MonthlyLimitPerMentee {
		return ErrMonthlyLimit
	}

	hourly, err := g.Analyses.CountForMenteeSince(ctx, menteeID, now.Add(-time.Hour))
	if err != nil {
		telemetry.Warn("hourly analysis count failed", map[string]any{"error": err.Error()})
		return nil
	}
	if hourly >= HourlyLimitPerMentee {
		return ErrHourlyLimit
	}
	return nil
}

// truncateIP keeps addresses inside the storage column width.
func truncateIP(ip string) string {
	if len(ip) > maxIPLen {
		return ip[:maxIPLen]
	}
	return ip
}
