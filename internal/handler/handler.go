package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	ListUpcoming(ctx context.Context) ([]*domain.EventDetails, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type RegistrationSvc interface {
	RegisterTeam(ctx context.Context, in domain.RegisterTeamInput) (*domain.Registration, error)
	Cancel(ctx context.Context, id string) (*domain.Registration, error)
	Get(ctx context.Context, id string) (*domain.Registration, error)
	CheckTeamName(ctx context.Context, eventID, teamName string) (*domain.TeamNameCheck, error)
}

type AdminSvc interface {
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	ListRegistrations(ctx context.Context, f domain.RegistrationFilter) ([]*domain.Registration, int, error)
	ExportConfirmed(ctx context.Context, eventID string) (*domain.Export, error)
	OverrideStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	adminService        AdminSvc
}

func NewHandler(eventService EventSvc, registrationService RegistrationSvc, adminService AdminSvc) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		adminService:        adminService,
	}
}

const dateLayout = "2006-01-02"

// Quizzes

func (h *Handler) ListQuizzes(c *ginext.Context) {
	quizzes, err := h.eventService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.QuizDetailsResponse, 0, len(quizzes))
	for _, q := range quizzes {
		resp = append(resp, dto.ToQuizDetailsResponse(q))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetQuiz(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuizDetailsResponse(details))
}

func (h *Handler) CreateQuiz(c *ginext.Context) {
	var req dto.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Date:            date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		MaxTeams:        req.MaxTeams,
		MinTeamSize:     req.MinTeamSize,
		MaxTeamSize:     req.MaxTeamSize,
		Location:        req.Location,
		Price:           req.Price,
	}

	quiz, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuizResponse(quiz))
}

func (h *Handler) UpdateQuiz(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req dto.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		MaxTeams:        req.MaxTeams,
		MinTeamSize:     req.MinTeamSize,
		MaxTeamSize:     req.MaxTeamSize,
		Location:        req.Location,
		Price:           req.Price,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		input.Status = &status
	}

	quiz, err := h.eventService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuizResponse(quiz))
}

func (h *Handler) DeleteQuiz(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Registrations

func (h *Handler) RegisterTeam(c *ginext.Context) {
	var req dto.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterTeamInput{
		EventID:          req.QuizID,
		TeamName:         req.TeamName,
		TeamSize:         req.TeamSize,
		CaptainFirstName: req.CaptainFirstName,
		CaptainLastName:  req.CaptainLastName,
		CaptainEmail:     req.CaptainEmail,
		CaptainPhone:     req.CaptainPhone,
		Experience:       domain.Experience(req.Experience),
		HowHeardAbout:    req.HowHeardAbout,
		Notes:            req.Notes,
	}

	reg, err := h.registrationService.RegisterTeam(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	msg := "Команда зарегистрирована, до встречи на игре!"
	if reg.Status == domain.RegistrationStatusWaitlist {
		msg = "Свободных мест нет, команда добавлена в лист ожидания"
	}
	c.JSON(http.StatusCreated, dto.RegistrationOutcomeResponse{
		Message:      msg,
		Registration: dto.ToRegistrationResponse(reg),
	})
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	reg, err := h.registrationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	reg, err := h.registrationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegistrationOutcomeResponse{
		Message:      "Регистрация отменена",
		Registration: dto.ToRegistrationResponse(reg),
	})
}

func (h *Handler) CheckTeamName(c *ginext.Context) {
	quizID := c.Param("quizId")
	if _, err := uuid.Parse(quizID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}
	teamName := c.Param("teamName")

	check, err := h.registrationService.CheckTeamName(c.Request.Context(), quizID, teamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeamNameCheckResponse{
		Taken:  check.Taken,
		Status: string(check.Status),
	})
}

// Admin

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, admin, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminResponse(admin),
	})
}

func (h *Handler) Dashboard(c *ginext.Context) {
	dashboard, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	filter := domain.RegistrationFilter{
		EventID: c.Query("quizId"),
		Status:  domain.RegistrationStatus(c.Query("status")),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	if filter.EventID != "" {
		if _, err := uuid.Parse(filter.EventID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
			return
		}
	}

	regs, total, err := h.adminService.ListRegistrations(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	c.JSON(http.StatusOK, dto.RegistrationListResponse{
		Registrations: resp,
		Total:         total,
		Page:          filter.Page,
		Limit:         filter.Limit,
	})
}

func (h *Handler) ExportRegistrations(c *ginext.Context) {
	quizID := c.Param("quizId")
	if _, err := uuid.Parse(quizID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}

	export, err := h.adminService.ExportConfirmed(c.Request.Context(), quizID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}

func (h *Handler) OverrideRegistrationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.adminService.OverrideStatus(c.Request.Context(), id, domain.RegistrationStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateRegistration),
		errors.Is(err, domain.ErrEventAtCapacity):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrTeamSizeOutOfRange),
		errors.Is(err, domain.ErrTeamNameTaken),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrRegistrationClosed),
		errors.Is(err, domain.ErrEventInPast):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
