package mentees

import "time"

// Mentee is the durable anchor for a person uploading resumes, keyed by
// email. Name and target role are the only mutable fields.
type Mentee struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	TargetRole string    `json:"targetRole"`
	CreatedAt  time.Time `json:"createdAt"`
}
