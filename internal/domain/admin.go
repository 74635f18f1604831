package domain

import "time"

type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalEvents            int `json:"total_events"`
	ActiveEvents           int `json:"active_events"`
	TotalRegistrations     int `json:"total_registrations"`
	ConfirmedRegistrations int `json:"confirmed_registrations"`
}

type Dashboard struct {
	Stats               DashboardStats  `json:"stats"`
	RecentRegistrations []*Registration `json:"recent_registrations"`
	EventStats          []*EventStats   `json:"event_stats"`
}

// Export is a rendered CSV attachment of an event's confirmed teams.
type Export struct {
	Filename string
	Data     []byte
}
