package quota

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRequestLog struct {
	count    int
	countErr error
	appends  int
}

func (s *stubRequestLog) CountSince(ctx context.Context, ip, route string, since time.Time) (int, error) {
	return s.count, s.countErr
}

func (s *stubRequestLog) Append(ctx context.Context, ip, route string) error {
	s.appends++
	return nil
}

type stubAnalysisCounter struct {
	// counts are returned in call order, so a test can set distinct
	// monthly and hourly results.
	counts []int
	errs   []error
	calls  int
	since  []time.Time
}

func (s *stubAnalysisCounter) CountForMenteeSince(ctx context.Context, menteeID int64, since time.Time) (int, error) {
	i := s.calls
	s.calls++
	s.since = append(s.since, since)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	count := 0
	if i < len(s.counts) {
		count = s.counts[i]
	}
	return count, err
}

func newTestGuard(requests RequestLogStore, analyses AnalysisCounter, now time.Time) *Guard {
	g := NewGuard(requests, analyses)
	g.now = func() time.Time { return now }
	return g
}

func TestCheckIPUnderLimit(t *testing.T) {
	g := newTestGuard(&stubRequestLog{count: IPLimitPerHour - 1}, nil, time.Now())
	if err := g.CheckIP(context.Background(), "203.0.113.9", "/api/v1/upload"); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestCheckIPAtLimit(t *testing.T) {
	g := newTestGuard(&stubRequestLog{count: IPLimitPerHour}, nil, time.Now())
	err := g.CheckIP(context.Background(), "203.0.113.9", "/api/v1/upload")
	if !errors.Is(err, ErrIPLimit) {
		t.Fatalf("expected ErrIPLimit, got %v", err)
	}
}

func TestCheckIPFailOpen(t *testing.T) {
	g := newTestGuard(&stubRequestLog{countErr: errors.New("db down")}, nil, time.Now())
	if err := g.CheckIP(context.Background(), "203.0.113.9", "/api/v1/upload"); err != nil {
		t.Fatalf("store failure should not block, got %v", err)
	}
}

func TestCheckMenteeMonthlyLimit(t *testing.T) {
	counter := &stubAnalysisCounter{counts: []int{MonthlyLimitPerMentee}}
	g := newTestGuard(nil, counter, time.Now())
	err := g.CheckMentee(context.Background(), 1)
	if !errors.Is(err, ErrMonthlyLimit) {
		t.Fatalf("expected ErrMonthlyLimit, got %v", err)
	}
	if counter.calls != 1 {
		t.Fatalf("monthly rejection should short-circuit, got %d calls", counter.calls)
	}
}

func TestCheckMenteeHourlyLimit(t *testing.T) {
	counter := &stubAnalysisCounter{counts: []int{0, HourlyLimitPerMentee}}
	g := newTestGuard(nil, counter, time.Now())
	err := g.CheckMentee(context.Background(), 1)
	if !errors.Is(err, ErrHourlyLimit) {
		t.Fatalf("expected ErrHourlyLimit, got %v", err)
	}
}

func TestCheckMenteeUnderBothLimits(t *testing.T) {
	counter := &stubAnalysisCounter{counts: []int{MonthlyLimitPerMentee - 1, HourlyLimitPerMentee - 1}}
	g := newTestGuard(nil, counter, time.Now())
	if err := g.CheckMentee(context.Background(), 1); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestCheckMenteeFailOpen(t *testing.T) {
	counter := &stubAnalysisCounter{errs: []error{errors.New("db down")}}
	g := newTestGuard(nil, counter, time.Now())
	if err := g.CheckMentee(context.Background(), 1); err != nil {
		t.Fatalf("store failure should not block, got %v", err)
	}
}

func TestCheckMenteeMonthlyWindowStartsAtCalendarMonth(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)
	counter := &stubAnalysisCounter{counts: []int{0, 0}}
	g := newTestGuard(nil, counter, now)
	if err := g.CheckMentee(context.Background(), 1); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}

	wantMonth := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !counter.since[0].Equal(wantMonth) {
		t.Fatalf("monthly window start = %v, want %v", counter.since[0], wantMonth)
	}
	wantHour := now.Add(-time.Hour)
	if !counter.since[1].Equal(wantHour) {
		t.Fatalf("hourly window start = %v, want %v", counter.since[1], wantHour)
	}
}

func TestTruncateIPLongAddress(t *testing.T) {
	long := ""
	for i := 0; i < 10; i++ {
		long += "0123456789"
	}
	if got := truncateIP(long); len(got) != maxIPLen {
		t.Fatalf("truncated length = %d, want %d", len(got), maxIPLen)
	}
}
