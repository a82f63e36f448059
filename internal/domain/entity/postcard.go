package entity

import "time"

// Postcard source kinds.
const (
	PostcardSourceTrack = "track"
	PostcardSourcePlan  = "plan"
)

// Postcard is a generated, shareable postcard image reference.
type Postcard struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Source    string    `json:"source"` // "track" or "plan"
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
