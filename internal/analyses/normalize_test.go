package analyses

import (
	"encoding/json"
	"testing"
)

func TestNormalizeFullResult(t *testing.T) {
	raw := json.RawMessage(`{
		"skills": ["Go", "Postgres"],
		"experience": [{"company": "Acme", "years": 3}],
		"summary": "strong backend candidate",
		"gaps": ["no cloud experience"],
		"suggestions": ["add metrics to projects"],
		"fit": 9,
		"tracks": [{"id": "sys-design", "title": "System Design Prep", "ctaUrl": "https://example.com/sd"}]
	}`)

	p := Normalize(raw, NormalizeOptions{Role: "Backend Engineer"})

	if p.Role != "Backend Engineer" {
		t.Errorf("role = %q", p.Role)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" {
		t.Errorf("skills = %v", p.Skills)
	}
	if len(p.Experience) != 1 {
		t.Errorf("experience len = %d", len(p.Experience))
	}
	if p.Summary != "strong backend candidate" {
		t.Errorf("summary = %q", p.Summary)
	}
	if p.Fit != 9 {
		t.Errorf("fit = %d", p.Fit)
	}
	if len(p.Tracks) != 1 || p.Tracks[0].ID != "sys-design" {
		t.Errorf("tracks = %v", p.Tracks)
	}
}

func TestNormalizeNilProducesFallback(t *testing.T) {
	p := Normalize(nil, NormalizeOptions{})

	if p.Role != "General" {
		t.Errorf("role = %q, want General", p.Role)
	}
	if p.Summary != fallbackSummary {
		t.Errorf("summary = %q", p.Summary)
	}
	if p.Fit != DefaultFitScore {
		t.Errorf("fit = %d, want %d", p.Fit, DefaultFitScore)
	}
	if p.Skills == nil || p.Gaps == nil || p.Suggestions == nil || p.Experience == nil {
		t.Error("collections must be empty, not nil")
	}
	if len(p.Tracks) != 1 || p.Tracks[0].ID != "mentorship-basic" {
		t.Errorf("tracks = %v", p.Tracks)
	}
}

func TestNormalizeGarbageProducesFallback(t *testing.T) {
	p := Normalize(json.RawMessage(`"not an object at all`), NormalizeOptions{Role: "PM"})
	if p.Summary != fallbackSummary {
		t.Errorf("summary = %q", p.Summary)
	}
	if p.Role != "PM" {
		t.Errorf("role = %q", p.Role)
	}
}

func TestNormalizeFitVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare number", `{"fit": 4}`, 4},
		{"score wrapper", `{"fit": {"score": 6}}`, 6},
		{"missing", `{}`, DefaultFitScore},
		{"string", `{"fit": "great"}`, DefaultFitScore},
		{"above range", `{"fit": 42}`, 10},
		{"below range", `{"fit": -3}`, 0},
		{"fractional", `{"fit": 7.6}`, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(json.RawMessage(tt.raw), NormalizeOptions{})
			if p.Fit != tt.want {
				t.Errorf("fit = %d, want %d", p.Fit, tt.want)
			}
		})
	}
}

func TestNormalizeMalformedFieldsDropped(t *testing.T) {
	raw := json.RawMessage(`{"skills": "not a list", "summary": 42, "gaps": ["real gap"]}`)
	p := Normalize(raw, NormalizeOptions{})

	if len(p.Skills) != 0 {
		t.Errorf("skills = %v", p.Skills)
	}
	if p.Summary != "" {
		t.Errorf("summary = %q", p.Summary)
	}
	if len(p.Gaps) != 1 || p.Gaps[0] != "real gap" {
		t.Errorf("gaps = %v", p.Gaps)
	}
}

func TestNormalizeEmptyTracksGetDefault(t *testing.T) {
	p := Normalize(json.RawMessage(`{"tracks": []}`), NormalizeOptions{})
	if len(p.Tracks) != 1 || p.Tracks[0].ID != "mentorship-basic" {
		t.Errorf("tracks = %v", p.Tracks)
	}
}

func TestNormalizeCarriesParseInfo(t *testing.T) {
	parse := ParseInfo{Parser: "pdf", Pages: 2, TextLength: 1200, File: ParsedFile{Name: "cv.pdf", Mime: "application/pdf", Ext: ".pdf"}}
	p := Normalize(nil, NormalizeOptions{Parse: parse, JobDescription: "ship features"})
	if p.Parse != parse {
		t.Errorf("parse = %+v", p.Parse)
	}
	if p.JobDescription != "ship features" {
		t.Errorf("jobDescription = %q", p.JobDescription)
	}
}
