package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/handler/dto"
	hmocks "github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRegistrationSvc, *hmocks.MockAdminSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	regSvc := hmocks.NewMockRegistrationSvc(t)
	adminSvc := hmocks.NewMockAdminSvc(t)

	h := NewHandler(eventSvc, regSvc, adminSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/quizzes", h.ListQuizzes)
		api.GET("/quizzes/:id", h.GetQuiz)
		api.POST("/quizzes", h.CreateQuiz)
		api.PUT("/quizzes/:id", h.UpdateQuiz)
		api.DELETE("/quizzes/:id", h.DeleteQuiz)
		api.POST("/registrations/team", h.RegisterTeam)
		api.GET("/registrations/team/:id", h.GetRegistration)
		api.PUT("/registrations/team/:id/cancel", h.CancelRegistration)
		api.GET("/registrations/check-team/:teamName/:quizId", h.CheckTeamName)
		api.POST("/admin/login", h.Login)
		api.GET("/admin/dashboard", h.Dashboard)
		api.GET("/admin/registrations", h.ListRegistrations)
		api.GET("/admin/export/:quizId", h.ExportRegistrations)
		api.PUT("/admin/registrations/:id/status", h.OverrideRegistrationStatus)
	}

	return eventSvc, regSvc, adminSvc, r
}

// --- Quizzes ---

func TestHandler_ListQuizzes_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quizzes := []*domain.EventDetails{
		{
			Event:          domain.Event{ID: "e1", Title: "Осенний квиз", Date: time.Now(), MaxTeams: 10},
			ConfirmedCount: 7,
			AvailableSpots: 3,
		},
	}
	eventSvc.EXPECT().ListUpcoming(mock.Anything).Return(quizzes, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.QuizDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].AvailableSpots)
	assert.Equal(t, 7, resp[0].ConfirmedTeams)
}

func TestHandler_GetQuiz_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quizID := uuid.New().String()
	details := &domain.EventDetails{
		Event:          domain.Event{ID: quizID, Title: "Осенний квиз", Date: time.Now(), MaxTeams: 10},
		ConfirmedCount: 10,
		AvailableSpots: 0,
		IsFull:         true,
	}
	eventSvc.EXPECT().GetDetails(mock.Anything, quizID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quizID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuizDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsFull)
	assert.Zero(t, resp.AvailableSpots)
}

func TestHandler_GetQuiz_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetQuiz_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quizID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, quizID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quizID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateQuiz_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quiz := &domain.Event{
		ID:     uuid.New().String(),
		Title:  "Осенний квиз",
		Date:   time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Status: domain.EventStatusActive,
	}
	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(quiz, nil)

	body, _ := json.Marshal(dto.CreateQuizRequest{
		Title:           "Осенний квиз",
		Date:            "2026-10-15",
		StartTime:       "19:00",
		DurationMinutes: 120,
		MaxTeams:        12,
		MinTeamSize:     2,
		MaxTeamSize:     8,
		Location:        "Бар «Сова»",
		Price:           500,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.QuizResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Осенний квиз", resp.Title)
	assert.Equal(t, "ACTIVE", resp.Status)
}

func TestHandler_CreateQuiz_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","date":"15.10.2026","startTime":"19:00","durationMinutes":120,"maxTeams":12,"minTeamSize":2,"maxTeamSize":8,"location":"Бар"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateQuiz_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizzes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateQuiz_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quizID := uuid.New().String()
	quiz := &domain.Event{ID: quizID, Title: "Зимний квиз", Status: domain.EventStatusActive}
	eventSvc.EXPECT().Update(mock.Anything, quizID, mock.Anything).Return(quiz, nil)

	body := []byte(`{"title":"Зимний квиз"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/quizzes/"+quizID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuizResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Зимний квиз", resp.Title)
}

func TestHandler_DeleteQuiz_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quizID := uuid.New().String()
	eventSvc.EXPECT().Delete(mock.Anything, quizID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/quizzes/"+quizID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Registrations ---

func validRegisterBody(quizID string) []byte {
	body, _ := json.Marshal(dto.RegisterTeamRequest{
		QuizID:           quizID,
		TeamName:         "Знатоки",
		TeamSize:         5,
		CaptainFirstName: "Анна",
		CaptainLastName:  "Иванова",
		CaptainEmail:     "anna@example.com",
		CaptainPhone:     "+79991234567",
		Experience:       "EXPERIENCED",
	})
	return body
}

func TestHandler_RegisterTeam_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	quizID := uuid.New().String()
	reg := &domain.Registration{
		ID:       uuid.New().String(),
		EventID:  quizID,
		TeamName: "Знатоки",
		Status:   domain.RegistrationStatusConfirmed,
	}
	regSvc.EXPECT().RegisterTeam(mock.Anything, mock.Anything).Return(reg, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/team", bytes.NewReader(validRegisterBody(quizID)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationOutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Registration.Status)
	assert.Equal(t, quizID, resp.Registration.QuizID)
	assert.NotEmpty(t, resp.Message)
	assert.NotContains(t, resp.Message, "лист ожидания")
}

func TestHandler_RegisterTeam_Waitlisted(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	quizID := uuid.New().String()
	reg := &domain.Registration{
		ID:       uuid.New().String(),
		EventID:  quizID,
		TeamName: "Знатоки",
		Status:   domain.RegistrationStatusWaitlist,
	}
	regSvc.EXPECT().RegisterTeam(mock.Anything, mock.Anything).Return(reg, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/team", bytes.NewReader(validRegisterBody(quizID)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// Ответ должен словами объяснить капитану, что команда в листе ожидания
	var resp dto.RegistrationOutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WAITLIST", resp.Registration.Status)
	assert.Contains(t, resp.Message, "лист ожидания")
}

func TestHandler_RegisterTeam_NameTaken(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regSvc.EXPECT().RegisterTeam(mock.Anything, mock.Anything).Return(nil, domain.ErrTeamNameTaken)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/team", bytes.NewReader(validRegisterBody(uuid.New().String())))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterTeam_ConcurrentDuplicate(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	// Гонку за имя фиксирует индекс, наружу это конфликт
	regSvc.EXPECT().RegisterTeam(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateRegistration)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/team", bytes.NewReader(validRegisterBody(uuid.New().String())))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterTeam_RegistrationClosed(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regSvc.EXPECT().RegisterTeam(mock.Anything, mock.Anything).Return(nil, domain.ErrRegistrationClosed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/team", bytes.NewReader(validRegisterBody(uuid.New().String())))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterTeam_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"teamName":"Знатоки"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/registrations/team", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelRegistration_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	reg := &domain.Registration{ID: regID, EventID: "e1", Status: domain.RegistrationStatusCancelled}
	regSvc.EXPECT().Cancel(mock.Anything, regID).Return(reg, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/registrations/team/"+regID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationOutcomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CANCELLED", resp.Registration.Status)
	assert.NotEmpty(t, resp.Message)
}

func TestHandler_CancelRegistration_AlreadyCancelled(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	regSvc.EXPECT().Cancel(mock.Anything, regID).Return(nil, domain.ErrAlreadyCancelled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/registrations/team/"+regID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckTeamName_Success(t *testing.T) {
	_, regSvc, _, r := setupRouter(t)

	quizID := uuid.New().String()
	regSvc.EXPECT().CheckTeamName(mock.Anything, quizID, "Знатоки").
		Return(&domain.TeamNameCheck{Taken: true, Status: domain.RegistrationStatusConfirmed}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations/check-team/Знатоки/"+quizID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TeamNameCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Taken)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestHandler_CheckTeamName_InvalidQuizID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations/check-team/Знатоки/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin ---

func TestHandler_Login_Success(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	admin := &domain.Admin{ID: "a1", Email: "admin@example.com", Name: "Admin", Role: "admin"}
	adminSvc.EXPECT().Login(mock.Anything, "admin@example.com", "secret123").Return("jwt-token", admin, nil)

	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "secret123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, "admin@example.com", resp.Admin.Email)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	adminSvc.EXPECT().Login(mock.Anything, "admin@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Dashboard_Success(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	dash := &domain.Dashboard{
		Stats: domain.DashboardStats{
			TotalEvents:            4,
			ActiveEvents:           2,
			TotalRegistrations:     30,
			ConfirmedRegistrations: 25,
		},
		RecentRegistrations: []*domain.Registration{{ID: "r1", TeamName: "Знатоки"}},
		EventStats:          []*domain.EventStats{{EventID: "e1", Title: "Осенний квиз", ConfirmedCount: 7}},
	}
	adminSvc.EXPECT().Dashboard(mock.Anything).Return(dash, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Stats.TotalQuizzes)
	assert.Len(t, resp.RecentRegistrations, 1)
	assert.Len(t, resp.Quizzes, 1)
}

func TestHandler_ListRegistrations_WithFilters(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	quizID := uuid.New().String()
	regs := []*domain.Registration{{ID: "r1", EventID: quizID, TeamName: "Знатоки", Status: domain.RegistrationStatusWaitlist}}

	adminSvc.EXPECT().ListRegistrations(mock.Anything, domain.RegistrationFilter{
		EventID: quizID,
		Status:  domain.RegistrationStatusWaitlist,
		Page:    2,
		Limit:   5,
	}).Return(regs, 11, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/admin/registrations?quizId="+quizID+"&status=WAITLIST&page=2&limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Registrations, 1)
	assert.Equal(t, "WAITLIST", resp.Registrations[0].Status)
}

func TestHandler_ListRegistrations_InvalidQuizID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/registrations?quizId=bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExportRegistrations_Success(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	quizID := uuid.New().String()
	export := &domain.Export{
		Filename: "Осенний_квиз_2026-10-15.csv",
		Data:     []byte("\xEF\xBB\xBFКоманда\n"),
	}
	adminSvc.EXPECT().ExportConfirmed(mock.Anything, quizID).Return(export, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/"+quizID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Команда")
}

func TestHandler_OverrideStatus_Success(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	regID := uuid.New().String()
	reg := &domain.Registration{ID: regID, EventID: "e1", Status: domain.RegistrationStatusConfirmed}
	adminSvc.EXPECT().OverrideStatus(mock.Anything, regID, domain.RegistrationStatusConfirmed).Return(reg, nil)

	body := []byte(`{"status":"CONFIRMED"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/registrations/"+regID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestHandler_OverrideStatus_AtCapacity(t *testing.T) {
	_, _, adminSvc, r := setupRouter(t)

	regID := uuid.New().String()
	adminSvc.EXPECT().OverrideStatus(mock.Anything, regID, domain.RegistrationStatusConfirmed).
		Return(nil, domain.ErrEventAtCapacity)

	body := []byte(`{"status":"CONFIRMED"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/registrations/"+regID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	quizID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, quizID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/"+quizID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
