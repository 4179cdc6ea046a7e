// Package intake runs the upload pipeline: rate and quota gates,
// identity, file storage, text extraction, analysis, and persistence.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mentorcv-backend/internal/ai"
	"mentorcv-backend/internal/analyses"
	"mentorcv-backend/internal/extract"
	"mentorcv-backend/internal/mentees"
	"mentorcv-backend/internal/quota"
	"mentorcv-backend/internal/resumes"
	"mentorcv-backend/internal/shared/metrics"
	"mentorcv-backend/internal/shared/storage/blob"
	"mentorcv-backend/internal/shared/telemetry"
)

// UploadRoute is the route name written to the request log.
const UploadRoute = "/api/v1/upload"

// maxAnalysisChars caps how much extracted text is sent for analysis.
const maxAnalysisChars = 14000

// fallbackID stands in when a database write fails. The client still
// receives a complete response built around it.
const fallbackID = 1

// UploadInput is everything the pipeline needs for one upload.
type UploadInput struct {
	FileName       string
	FileType       string
	Data           []byte
	Email          string
	Name           string
	TargetRole     string
	JobDescription string
	IP             string
}

// UploadResult is what the pipeline hands back to the handler.
type UploadResult struct {
	AnalysisID int64
	TextLength int
	Parser     string
}

// Service orchestrates the upload pipeline.
type Service struct {
	Mentees  *mentees.Service
	Resumes  resumes.Repo
	Analyses analyses.Repo
	Guard    *quota.Guard
	Blobs    *blob.Gateway
	AI       ai.Client
}

// NewService constructs a Service.
func NewService(m *mentees.Service, r resumes.Repo, a analyses.Repo, g *quota.Guard, b *blob.Gateway, client ai.Client) *Service {
	return &Service{Mentees: m, Resumes: r, Analyses: a, Guard: g, Blobs: b, AI: client}
}

// HandleUpload runs the pipeline end to end. Quota sentinels come back
// unwrapped so the handler can map them to statuses; storage and AI
// failures inside the pipeline degrade instead of erroring.
func (s *Service) HandleUpload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if err := s.Guard.CheckIP(ctx, in.IP, UploadRoute); err != nil {
		return UploadResult{}, err
	}
	s.Guard.RecordRequest(ctx, in.IP, UploadRoute)

	// Quotas only apply to known mentees; a first upload always passes.
	existing, err := s.Mentees.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		if err := s.Guard.CheckMentee(ctx, existing.ID); err != nil {
			return UploadResult{}, err
		}
	case errors.Is(err, mentees.ErrNotFound):
	case errors.Is(err, mentees.ErrEmailRequired):
		return UploadResult{}, err
	default:
		telemetry.Warn("mentee lookup failed", map[string]any{"error": err.Error()})
	}

	menteeID, err := s.Mentees.Upsert(ctx, in.Email, in.Name, in.TargetRole)
	if err != nil {
		telemetry.Warn("mentee upsert failed", map[string]any{"error": err.Error()})
		menteeID = fallbackID
	}

	parsed := extract.File(in.Data, in.FileType, in.FileName)
	if parsed.Error != "" {
		telemetry.Warn("text extraction degraded", map[string]any{
			"parser": parsed.Parser,
			"error":  parsed.Error,
		})
	}

	fileURL, durable := s.Blobs.Store(ctx, in.FileName, in.FileType, in.Data)
	if !durable {
		metrics.IncBlobFallback()
	}

	resumeID, err := s.Resumes.Create(ctx, resumes.Resume{
		MenteeID:    menteeID,
		FileURL:     fileURL,
		FileType:    in.FileType,
		TextContent: parsed.Text,
	})
	if err != nil {
		telemetry.Warn("resume persist failed", map[string]any{"error": err.Error()})
		resumeID = fallbackID
	}

	raw := s.analyze(ctx, parsed, in)

	payload := analyses.Normalize(raw, analyses.NormalizeOptions{
		Role:           in.TargetRole,
		JobDescription: in.JobDescription,
		Parse: analyses.ParseInfo{
			Parser:     parsed.Parser,
			Pages:      parsed.Pages,
			TextLength: len([]rune(parsed.Text)),
			File: analyses.ParsedFile{
				Name: parsed.Name,
				Mime: parsed.Mime,
				Ext:  parsed.Ext,
			},
			Error: parsed.Error,
		},
	})

	result, err := json.Marshal(payload)
	if err != nil {
		return UploadResult{}, fmt.Errorf("marshal analysis payload: %w", err)
	}

	analysisID, err := s.Analyses.Create(ctx, resumeID, result)
	if err != nil {
		// The analysis exists in memory even if the row does not; the
		// client still gets an id it can present.
		telemetry.Warn("analysis persist failed", map[string]any{"error": err.Error()})
		analysisID = fallbackID
	}

	metrics.IncUpload()
	return UploadResult{
		AnalysisID: analysisID,
		TextLength: len([]rune(parsed.Text)),
		Parser:     parsed.Parser,
	}, nil
}

// analyze calls the AI backend with truncated text. Empty text is still
// a valid request; the backend decides what to make of it. Any failure,
// an unconfigured backend included, returns nil so normalization
// produces the fallback payload.
func (s *Service) analyze(ctx context.Context, parsed extract.Result, in UploadInput) json.RawMessage {
	role := in.TargetRole
	if role == "" {
		role = "General"
	}

	raw, err := s.AI.Analyze(ctx, ai.Input{
		Text:           truncateRunes(parsed.Text, maxAnalysisChars),
		TargetRole:     role,
		JobDescription: in.JobDescription,
	})
	if err != nil {
		if !errors.Is(err, ai.ErrNotConfigured) {
			telemetry.Warn("analysis backend failed", map[string]any{"error": err.Error()})
		}
		metrics.IncAIFallback()
		return nil
	}
	return raw
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
