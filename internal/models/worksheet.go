package models

import "time"

// Worksheet is a persisted, ordered subject list belonging to one student.
type Worksheet struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Subjects  []Subject `json:"subjects"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// WorksheetView bundles a worksheet with its current evaluation.
type WorksheetView struct {
	Worksheet  Worksheet        `json:"worksheet"`
	Evaluation EvaluationResult `json:"evaluation"`
}

// WorksheetCreated is returned once on creation; the token is required for every later access.
type WorksheetCreated struct {
	WorksheetView
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
