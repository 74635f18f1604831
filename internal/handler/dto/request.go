package dto

type RegisterTeamRequest struct {
	QuizID           string `json:"quizId" binding:"required,uuid"`
	TeamName         string `json:"teamName" binding:"required,min=3,max=50"`
	TeamSize         int    `json:"teamSize" binding:"required,gt=0"`
	CaptainFirstName string `json:"captainFirstName" binding:"required,min=2"`
	CaptainLastName  string `json:"captainLastName" binding:"required,min=2"`
	CaptainEmail     string `json:"captainEmail" binding:"required,email"`
	CaptainPhone     string `json:"captainPhone" binding:"required,min=10"`
	Experience       string `json:"experience" binding:"omitempty,oneof=BEGINNER EXPERIENCED PROFESSIONAL"`
	HowHeardAbout    string `json:"howHeardAbout"`
	Notes            string `json:"notes" binding:"max=500"`
}

type CreateQuizRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description"`
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"startTime" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required"`
	MaxTeams        int     `json:"maxTeams" binding:"required"`
	MinTeamSize     int     `json:"minTeamSize" binding:"required"`
	MaxTeamSize     int     `json:"maxTeamSize" binding:"required"`
	Location        string  `json:"location" binding:"required"`
	Price           float64 `json:"price"`
}

type UpdateQuizRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Date            *string  `json:"date"`
	StartTime       *string  `json:"startTime"`
	DurationMinutes *int     `json:"durationMinutes"`
	MaxTeams        *int     `json:"maxTeams"`
	MinTeamSize     *int     `json:"minTeamSize"`
	MaxTeamSize     *int     `json:"maxTeamSize"`
	Location        *string  `json:"location"`
	Price           *float64 `json:"price"`
	Status          *string  `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
