package domain

import "time"

// Auditable carries the creation/modification timestamps shared by all
// persisted entities. Embedded by value; timestamps are set explicitly on
// create and update, never implicitly.
type Auditable struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Touch updates the modification timestamp.
func (a *Auditable) Touch(now time.Time) {
	a.ModifiedAt = now
}

// InitTimestamps sets both timestamps to the given instant.
func (a *Auditable) InitTimestamps(now time.Time) {
	a.CreatedAt = now
	a.ModifiedAt = now
}
