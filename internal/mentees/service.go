package mentees

import (
	"context"
	"errors"
	"strings"
)

// Service contains business logic for mentee identity.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

var ErrEmailRequired = errors.New("email is required")

// Upsert resolves an email to a stable mentee id, creating the record on
// first contact. Repeated identical calls leave the row unchanged.
func (s *Service) Upsert(ctx context.Context, email, name, targetRole string) (int64, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, ErrEmailRequired
	}
	return s.Repo.Upsert(ctx, email, strings.TrimSpace(name), strings.TrimSpace(targetRole))
}

// FindByEmail fetches an existing mentee, ErrNotFound for first-timers.
func (s *Service) FindByEmail(ctx context.Context, email string) (Mentee, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Mentee{}, ErrEmailRequired
	}
	return s.Repo.GetByEmail(ctx, email)
}
