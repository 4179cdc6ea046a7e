package resumes

import "time"

// Resume is one uploaded file tied to a mentee. Rows are immutable after
// creation; a new upload always creates a new row.
type Resume struct {
	ID          int64     `json:"id"`
	MenteeID    int64     `json:"menteeId"`
	FileURL     string    `json:"fileUrl"`
	FileType    string    `json:"fileType"`
	TextContent string    `json:"textContent"`
	CreatedAt   time.Time `json:"createdAt"`
}
