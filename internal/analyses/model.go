package analyses

import (
	"encoding/json"
	"time"
)

// Analysis is one stored analysis result tied to a resume. Rows are
// immutable after creation.
type Analysis struct {
	ID        int64           `json:"id"`
	ResumeID  int64           `json:"resumeId"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Payload is the canonical analysis shape persisted in the result
// column. Success and degraded paths produce the same structure.
type Payload struct {
	Role           string            `json:"role"`
	Skills         []string          `json:"skills"`
	Experience     []json.RawMessage `json:"experience"`
	Summary        string            `json:"summary"`
	Gaps           []string          `json:"gaps"`
	Suggestions    []string          `json:"suggestions"`
	Fit            int               `json:"fit"`
	Tracks         []Track           `json:"tracks"`
	JobDescription string            `json:"jobDescription,omitempty"`
	Parse          ParseInfo         `json:"parse"`
}

// Track is a recommended mentorship track.
type Track struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	CTAURL string `json:"ctaUrl"`
}

// ParseInfo records how the resume text was obtained.
type ParseInfo struct {
	Parser     string     `json:"parser"`
	Pages      int        `json:"pages,omitempty"`
	TextLength int        `json:"textLength"`
	File       ParsedFile `json:"file"`
	Error      string     `json:"error,omitempty"`
}

// ParsedFile describes the uploaded file the text came from.
type ParsedFile struct {
	Name string `json:"name"`
	Mime string `json:"mime"`
	Ext  string `json:"ext"`
}
