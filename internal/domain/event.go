package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusFull      EventStatus = "FULL"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// AcceptsRegistrations reports whether new registrations may be admitted at
// all. FULL events still accept registrations - they land on the waitlist.
func (s EventStatus) AcceptsRegistrations() bool {
	switch s {
	case EventStatusActive, EventStatusFull:
		return true
	case EventStatusCancelled, EventStatusCompleted:
		return false
	}
	return false
}

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusActive, EventStatusFull, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Bounds enforced on every event, mirrored by CHECK constraints in the schema.
const (
	MinMaxTeams     = 1
	MaxMaxTeams     = 50
	MinTeamSize     = 2
	MaxTeamSize     = 10
	MinDurationMins = 30
	MaxDurationMins = 300
)

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Date            time.Time   `json:"date"`
	StartTime       string      `json:"start_time"`
	DurationMinutes int         `json:"duration_minutes"`
	MaxTeams        int         `json:"max_teams"`
	MinTeamSize     int         `json:"min_team_size"`
	MaxTeamSize     int         `json:"max_team_size"`
	Location        string      `json:"location,omitempty"`
	Price           float64     `json:"price"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EventDetails is an Event together with its derived availability.
type EventDetails struct {
	Event          Event `json:"event"`
	ConfirmedCount int   `json:"confirmed_count"`
	AvailableSpots int   `json:"available_spots"`
	IsFull         bool  `json:"is_full"`
}

// EventStats is the per-event row of the admin dashboard.
type EventStats struct {
	EventID        string      `json:"event_id"`
	Title          string      `json:"title"`
	Date           time.Time   `json:"date"`
	Status         EventStatus `json:"status"`
	MaxTeams       int         `json:"max_teams"`
	ConfirmedCount int         `json:"confirmed_count"`
}

type CreateEventInput struct {
	Title           string
	Description     string
	Date            time.Time
	StartTime       string
	DurationMinutes int
	MaxTeams        int
	MinTeamSize     int
	MaxTeamSize     int
	Location        string
	Price           float64
}

// UpdateEventInput carries a partial update; nil fields keep current values.
type UpdateEventInput struct {
	Title           *string
	Description     *string
	Date            *time.Time
	StartTime       *string
	DurationMinutes *int
	MaxTeams        *int
	MinTeamSize     *int
	MaxTeamSize     *int
	Location        *string
	Price           *float64
	Status          *EventStatus
}
