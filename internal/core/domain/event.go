package domain

import "time"

// Event is a scheduled community gathering, online or in person.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	OrganizerID string    `json:"organizer_id"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
}
