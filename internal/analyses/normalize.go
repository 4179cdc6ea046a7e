package analyses

import (
	"encoding/json"
	"math"
)

const (
	// DefaultFitScore is the neutral score used when the AI omits or
	// garbles the fit field, and for the degraded fallback payload.
	DefaultFitScore = 7
	maxFitScore     = 10

	fallbackSummary = "AI analysis is temporarily unavailable. Here is a basic receipt of your upload. Try again shortly."
)

// DefaultTrack is the recommendation attached when the AI suggests none.
func DefaultTrack() Track {
	return Track{
		ID:     "mentorship-basic",
		Title:  "1-1 CV + Mock Interview",
		CTAURL: "https://calendly.com/your-mentor/intro",
	}
}

// NormalizeOptions carries request context into normalization.
type NormalizeOptions struct {
	Role           string
	JobDescription string
	Parse          ParseInfo
}

// rawResult mirrors the loosely-typed AI response. Every field is
// optional and decoded leniently; a malformed field counts as absent.
type rawResult struct {
	Skills      json.RawMessage `json:"skills"`
	Experience  json.RawMessage `json:"experience"`
	Summary     json.RawMessage `json:"summary"`
	Gaps        json.RawMessage `json:"gaps"`
	Suggestions json.RawMessage `json:"suggestions"`
	Fit         json.RawMessage `json:"fit"`
	Tracks      json.RawMessage `json:"tracks"`
}

// Normalize shapes an AI response into the canonical payload. A nil raw
// input produces the degraded fallback payload: same shape, empty
// collections, explanatory summary. The client-visible contract is
// identical either way.
func Normalize(raw json.RawMessage, opts NormalizeOptions) Payload {
	if opts.Role == "" {
		opts.Role = "General"
	}

	p := Payload{
		Role:           opts.Role,
		Skills:         []string{},
		Experience:     []json.RawMessage{},
		Gaps:           []string{},
		Suggestions:    []string{},
		Fit:            DefaultFitScore,
		Tracks:         []Track{DefaultTrack()},
		JobDescription: opts.JobDescription,
		Parse:          opts.Parse,
	}

	if len(raw) == 0 {
		p.Summary = fallbackSummary
		return p
	}

	var res rawResult
	if err := json.Unmarshal(raw, &res); err != nil {
		p.Summary = fallbackSummary
		return p
	}

	p.Skills = decodeStrings(res.Skills)
	p.Experience = decodeRawList(res.Experience)
	p.Gaps = decodeStrings(res.Gaps)
	p.Suggestions = decodeStrings(res.Suggestions)
	p.Summary = decodeString(res.Summary)
	p.Fit = normalizeFit(res.Fit)
	if tracks := decodeTracks(res.Tracks); len(tracks) > 0 {
		p.Tracks = tracks
	}
	return p
}

// normalizeFit accepts a bare number or a {score} wrapper, clamps to the
// 0-10 range, and falls back to the neutral default otherwise.
func normalizeFit(raw json.RawMessage) int {
	if len(raw) == 0 {
		return DefaultFitScore
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return clampFit(num)
	}

	var wrapped struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Score != nil {
		return clampFit(*wrapped.Score)
	}
	return DefaultFitScore
}

func clampFit(v float64) int {
	score := int(math.Round(v))
	if score < 0 {
		return 0
	}
	if score > maxFitScore {
		return maxFitScore
	}
	return score
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func decodeStrings(raw json.RawMessage) []string {
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func decodeRawList(raw json.RawMessage) []json.RawMessage {
	var out []json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []json.RawMessage{}
	}
	return out
}

func decodeTracks(raw json.RawMessage) []Track {
	var out []Track
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
