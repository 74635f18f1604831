package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationStatusWaitlist  RegistrationStatus = "WAITLIST"
	RegistrationStatusCancelled RegistrationStatus = "CANCELLED"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusConfirmed, RegistrationStatusWaitlist, RegistrationStatusCancelled:
		return true
	}
	return false
}

type Experience string

const (
	ExperienceBeginner     Experience = "BEGINNER"
	ExperienceExperienced  Experience = "EXPERIENCED"
	ExperienceProfessional Experience = "PROFESSIONAL"
)

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceExperienced, ExperienceProfessional:
		return true
	}
	return false
}

type Registration struct {
	ID               string             `json:"id"`
	EventID          string             `json:"event_id"`
	TeamName         string             `json:"team_name"`
	TeamSize         int                `json:"team_size"`
	CaptainFirstName string             `json:"captain_first_name"`
	CaptainLastName  string             `json:"captain_last_name"`
	CaptainEmail     string             `json:"captain_email"`
	CaptainPhone     string             `json:"captain_phone"`
	Experience       Experience         `json:"experience"`
	HowHeardAbout    string             `json:"how_heard_about,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	Status           RegistrationStatus `json:"status"`
	ReminderSent     bool               `json:"reminder_sent"`
	CreatedAt        time.Time          `json:"created_at"`
}

type RegisterTeamInput struct {
	EventID          string
	TeamName         string
	TeamSize         int
	CaptainFirstName string
	CaptainLastName  string
	CaptainEmail     string
	CaptainPhone     string
	Experience       Experience
	HowHeardAbout    string
	Notes            string
}

// DecideAdmission is the admission decision: a team is confirmed iff the
// confirmed count observed under the event lock is strictly below capacity.
func DecideAdmission(confirmedCount, maxTeams int) RegistrationStatus {
	if confirmedCount < maxTeams {
		return RegistrationStatusConfirmed
	}
	return RegistrationStatusWaitlist
}

// FillsLastSlot reports whether confirming one more team exhausts capacity.
func FillsLastSlot(confirmedCount, maxTeams int) bool {
	return confirmedCount+1 >= maxTeams
}

// TeamNameCheck is the result of the public team-name availability lookup.
// Only non-cancelled registrations occupy a name; a cancelled team frees it.
type TeamNameCheck struct {
	Taken  bool               `json:"taken"`
	Status RegistrationStatus `json:"status,omitempty"`
}

// RegistrationFilter narrows admin listings. Zero values mean "any".
type RegistrationFilter struct {
	EventID string
	Status  RegistrationStatus
	Page    int
	Limit   int
}
