package analyses

import (
	"encoding/json"
	"time"
)

// Summary is the display shape for one recent analysis.
type Summary struct {
	ID               int64     `json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	MenteeName       string    `json:"menteeName"`
	TargetRole       string    `json:"targetRole"`
	SkillsCount      int       `json:"skillsCount"`
	GapsCount        int       `json:"gapsCount"`
	SuggestionsCount int       `json:"suggestionsCount"`
	FitScore         float64   `json:"fitScore"`
	HasResult        bool      `json:"hasResult"`
}

// storedResult is the lenient read-side view of a persisted payload.
// Counts only need list lengths, so elements stay raw.
type storedResult struct {
	Skills      []json.RawMessage `json:"skills"`
	Gaps        []json.RawMessage `json:"gaps"`
	Suggestions []json.RawMessage `json:"suggestions"`
	Fit         json.RawMessage   `json:"fit"`
}

// Summarize reshapes stored rows into display summaries. Missing or
// malformed payload fields default to empty/zero rather than erroring.
func Summarize(rows []RecentRow) []Summary {
	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		s := Summary{
			ID:         row.ID,
			CreatedAt:  row.CreatedAt,
			MenteeName: row.MenteeName,
			TargetRole: row.TargetRole,
			HasResult:  hasResult(row.Result),
		}

		var stored storedResult
		if err := json.Unmarshal(row.Result, &stored); err == nil {
			s.SkillsCount = len(stored.Skills)
			s.GapsCount = len(stored.Gaps)
			s.SuggestionsCount = len(stored.Suggestions)
			s.FitScore = fitAsNumber(stored.Fit)
		}
		out = append(out, s)
	}
	return out
}

// fitAsNumber coerces the stored fit to a number, 0 for anything else.
func fitAsNumber(raw json.RawMessage) float64 {
	var num float64
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0
	}
	return num
}

func hasResult(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
