package dto

import (
	"time"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
)

const dateLayout = "2006-01-02"

type QuizResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	MaxTeams        int     `json:"maxTeams"`
	MinTeamSize     int     `json:"minTeamSize"`
	MaxTeamSize     int     `json:"maxTeamSize"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type QuizDetailsResponse struct {
	QuizResponse
	ConfirmedTeams int  `json:"confirmedTeams"`
	AvailableSpots int  `json:"availableSpots"`
	IsFull         bool `json:"isFull"`
}

type RegistrationResponse struct {
	ID               string `json:"id"`
	QuizID           string `json:"quizId"`
	TeamName         string `json:"teamName"`
	TeamSize         int    `json:"teamSize"`
	CaptainFirstName string `json:"captainFirstName"`
	CaptainLastName  string `json:"captainLastName"`
	CaptainEmail     string `json:"captainEmail"`
	CaptainPhone     string `json:"captainPhone"`
	Experience       string `json:"experience"`
	HowHeardAbout    string `json:"howHeardAbout,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Status           string `json:"status"`
	CreatedAt        string `json:"createdAt"`
}

// RegistrationOutcomeResponse pairs a registration with the human-readable
// outcome shown to the captain (confirmed vs waitlisted vs cancelled).
type RegistrationOutcomeResponse struct {
	Message      string               `json:"message"`
	Registration RegistrationResponse `json:"registration"`
}

type TeamNameCheckResponse struct {
	Taken  bool   `json:"taken"`
	Status string `json:"status,omitempty"`
}

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type DashboardResponse struct {
	Stats               DashboardStatsResponse `json:"stats"`
	RecentRegistrations []RegistrationResponse `json:"recentRegistrations"`
	Quizzes             []QuizStatsResponse    `json:"quizzes"`
}

type DashboardStatsResponse struct {
	TotalQuizzes           int `json:"totalQuizzes"`
	ActiveQuizzes          int `json:"activeQuizzes"`
	TotalRegistrations     int `json:"totalRegistrations"`
	ConfirmedRegistrations int `json:"confirmedRegistrations"`
}

type QuizStatsResponse struct {
	QuizID         string `json:"quizId"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	Status         string `json:"status"`
	MaxTeams       int    `json:"maxTeams"`
	ConfirmedTeams int    `json:"confirmedTeams"`
}

type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Total         int                    `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToQuizResponse(e *domain.Event) QuizResponse {
	return QuizResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date.Format(dateLayout),
		StartTime:       e.StartTime,
		DurationMinutes: e.DurationMinutes,
		MaxTeams:        e.MaxTeams,
		MinTeamSize:     e.MinTeamSize,
		MaxTeamSize:     e.MaxTeamSize,
		Location:        e.Location,
		Price:           e.Price,
		Status:          string(e.Status),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToQuizDetailsResponse(d *domain.EventDetails) QuizDetailsResponse {
	return QuizDetailsResponse{
		QuizResponse:   ToQuizResponse(&d.Event),
		ConfirmedTeams: d.ConfirmedCount,
		AvailableSpots: d.AvailableSpots,
		IsFull:         d.IsFull,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:               r.ID,
		QuizID:           r.EventID,
		TeamName:         r.TeamName,
		TeamSize:         r.TeamSize,
		CaptainFirstName: r.CaptainFirstName,
		CaptainLastName:  r.CaptainLastName,
		CaptainEmail:     r.CaptainEmail,
		CaptainPhone:     r.CaptainPhone,
		Experience:       string(r.Experience),
		HowHeardAbout:    r.HowHeardAbout,
		Notes:            r.Notes,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	recent := make([]RegistrationResponse, 0, len(d.RecentRegistrations))
	for _, r := range d.RecentRegistrations {
		recent = append(recent, ToRegistrationResponse(r))
	}

	quizzes := make([]QuizStatsResponse, 0, len(d.EventStats))
	for _, s := range d.EventStats {
		quizzes = append(quizzes, QuizStatsResponse{
			QuizID:         s.EventID,
			Title:          s.Title,
			Date:           s.Date.Format(dateLayout),
			Status:         string(s.Status),
			MaxTeams:       s.MaxTeams,
			ConfirmedTeams: s.ConfirmedCount,
		})
	}

	return DashboardResponse{
		Stats: DashboardStatsResponse{
			TotalQuizzes:           d.Stats.TotalEvents,
			ActiveQuizzes:          d.Stats.ActiveEvents,
			TotalRegistrations:     d.Stats.TotalRegistrations,
			ConfirmedRegistrations: d.Stats.ConfirmedRegistrations,
		},
		RecentRegistrations: recent,
		Quizzes:             quizzes,
	}
}
