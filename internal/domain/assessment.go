package domain

import "time"

// Assessment is one self-assessment session: the company being assessed, its
// eligibility gate state, and timestamps. Answers are stored separately and
// joined by ID.
type Assessment struct {
	ID          string
	Company     string
	Eligibility Eligibility
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
