// Package ai calls the external analysis service and degrades cleanly
// when it is unreachable or unconfigured.
package ai

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotConfigured is returned when no analysis backend is wired.
var ErrNotConfigured = errors.New("ai: analysis backend not configured")

// Input is the material sent for analysis. Text is already extracted
// and truncated by the caller.
type Input struct {
	Text           string
	TargetRole     string
	JobDescription string
}

// Client produces a raw analysis result for a resume. Implementations
// return the backend's JSON as-is; normalization happens downstream so
// a misbehaving backend cannot break the response contract.
type Client interface {
	Analyze(ctx context.Context, in Input) (json.RawMessage, error)
}

// Placeholder is the no-backend client. Every call fails with
// ErrNotConfigured, which the intake pipeline turns into a fallback
// payload.
type Placeholder struct{}

// Analyze always reports the backend as unconfigured.
func (Placeholder) Analyze(ctx context.Context, in Input) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}

var _ Client = Placeholder{}
