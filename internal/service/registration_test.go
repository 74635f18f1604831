package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func upcomingEvent() *domain.Event {
	return &domain.Event{
		ID:          "e1",
		Title:       "Осенний квиз",
		Date:        time.Now().UTC().AddDate(0, 0, 7),
		StartTime:   "19:00",
		MaxTeams:    10,
		MinTeamSize: 2,
		MaxTeamSize: 8,
		Status:      domain.EventStatusActive,
	}
}

func validRegisterInput() domain.RegisterTeamInput {
	return domain.RegisterTeamInput{
		EventID:          "e1",
		TeamName:         "Знатоки",
		TeamSize:         5,
		CaptainFirstName: "Анна",
		CaptainLastName:  "Иванова",
		CaptainEmail:     "anna@example.com",
		CaptainPhone:     "+79991234567",
		Experience:       domain.ExperienceExperienced,
	}
}

func TestRegistrationService_RegisterTeam_Confirmed(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	event := upcomingEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().FindActive(mock.Anything, "e1", "Знатоки").Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Register(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration) (*domain.Registration, error) {
			r.Status = domain.RegistrationStatusConfirmed
			return r, nil
		})
	notifier.EXPECT().NotifyOutcome(mock.Anything, mock.Anything, event).Return()

	reg, err := svc.RegisterTeam(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "Знатоки", reg.TeamName)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_RegisterTeam_Waitlisted(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	event := upcomingEvent()
	event.Status = domain.EventStatusFull // полный ивент принимает в лист ожидания
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().FindActive(mock.Anything, "e1", "Знатоки").Return(nil, domain.ErrRegistrationNotFound)
	regRepo.EXPECT().Register(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, r *domain.Registration) (*domain.Registration, error) {
			r.Status = domain.RegistrationStatusWaitlist
			return r, nil
		})
	notifier.EXPECT().NotifyOutcome(mock.Anything, mock.Anything, event).Return()

	reg, err := svc.RegisterTeam(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusWaitlist, reg.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_RegisterTeam_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RegisterTeamInput)
	}{
		{"empty team name", func(in *domain.RegisterTeamInput) { in.TeamName = "  " }},
		{"team name too short", func(in *domain.RegisterTeamInput) { in.TeamName = "Ян" }},
		{"empty captain name", func(in *domain.RegisterTeamInput) { in.CaptainFirstName = "" }},
		{"bad email", func(in *domain.RegisterTeamInput) { in.CaptainEmail = "not-an-email" }},
		{"empty phone", func(in *domain.RegisterTeamInput) { in.CaptainPhone = "" }},
		{"unknown experience", func(in *domain.RegisterTeamInput) { in.Experience = "GURU" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regRepo := mocks.NewMockRegistrationRepo(t)
			eventRepo := mocks.NewMockEventRepo(t)
			notifier := mocks.NewMockRegistrationNotifier(t)
			log := newTestLogger(t)

			svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

			in := validRegisterInput()
			tt.mutate(&in)

			_, err := svc.RegisterTeam(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegistrationService_RegisterTeam_EventNotFound(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, err := svc.RegisterTeam(context.Background(), validRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_RegisterTeam_RegistrationClosed(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	event := upcomingEvent()
	event.Status = domain.EventStatusCancelled
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.RegisterTeam(context.Background(), validRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegistrationService_RegisterTeam_EventInPast(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	event := upcomingEvent()
	event.Date = time.Now().UTC().AddDate(0, 0, -1)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.RegisterTeam(context.Background(), validRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventInPast)
}

func TestRegistrationService_RegisterTeam_TeamSizeOutOfRange(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)

	in := validRegisterInput()
	in.TeamSize = 9 // ивент принимает до 8

	_, err := svc.RegisterTeam(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTeamSizeOutOfRange)
}

func TestRegistrationService_RegisterTeam_TeamNameTaken(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	regRepo.EXPECT().FindActive(mock.Anything, "e1", "Знатоки").
		Return(&domain.Registration{ID: "r1", Status: domain.RegistrationStatusConfirmed}, nil)

	_, err := svc.RegisterTeam(context.Background(), validRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTeamNameTaken)
}

func TestRegistrationService_Cancel_WithPromotion(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	cancelled := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusCancelled}
	promoted := &domain.Registration{ID: "r2", EventID: "e1", TeamName: "Эрудиты", Status: domain.RegistrationStatusConfirmed}
	event := upcomingEvent()

	regRepo.EXPECT().Cancel(mock.Anything, "r1").Return(cancelled, promoted, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyPromotion(mock.Anything, promoted, event).Return()

	result, err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusCancelled, result.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Cancel_NoPromotion(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	cancelled := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusCancelled}
	regRepo.EXPECT().Cancel(mock.Anything, "r1").Return(cancelled, nil, nil)

	result, err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)
}

func TestRegistrationService_Cancel_AlreadyCancelled(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	regRepo.EXPECT().Cancel(mock.Anything, "r1").Return(nil, nil, domain.ErrAlreadyCancelled)

	_, err := svc.Cancel(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestRegistrationService_Cancel_PromotionEventLookupFails(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	cancelled := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusCancelled}
	promoted := &domain.Registration{ID: "r2", EventID: "e1"}

	regRepo.EXPECT().Cancel(mock.Anything, "r1").Return(cancelled, promoted, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, errors.New("db error"))

	// Отмена всё равно успешна, уведомление просто не уходит
	result, err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)
}

func TestRegistrationService_CheckTeamName_Taken(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	regRepo.EXPECT().FindActive(mock.Anything, "e1", "Знатоки").
		Return(&domain.Registration{ID: "r1", Status: domain.RegistrationStatusWaitlist}, nil)

	check, err := svc.CheckTeamName(context.Background(), "e1", "Знатоки")

	require.NoError(t, err)
	assert.True(t, check.Taken)
	assert.Equal(t, domain.RegistrationStatusWaitlist, check.Status)
}

func TestRegistrationService_CheckTeamName_Free(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	regRepo.EXPECT().FindActive(mock.Anything, "e1", "Новички").Return(nil, domain.ErrRegistrationNotFound)

	check, err := svc.CheckTeamName(context.Background(), "e1", "Новички")

	require.NoError(t, err)
	assert.False(t, check.Taken)
	assert.Empty(t, check.Status)
}

func TestRegistrationService_CheckTeamName_EventNotFound(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.CheckTeamName(context.Background(), "missing", "Знатоки")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_SendDueReminders_Success(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	due := []*domain.Registration{
		{ID: "r1", EventID: "e1", TeamName: "Знатоки"},
		{ID: "r2", EventID: "e1", TeamName: "Эрудиты"},
	}
	event := upcomingEvent()

	regRepo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	// Ивент один, грузится один раз
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Once()
	notifier.EXPECT().NotifyReminder(mock.Anything, due[0], event).Return()
	notifier.EXPECT().NotifyReminder(mock.Anything, due[1], event).Return()

	sent, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_SendDueReminders_NoneDue(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	regRepo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(nil, nil)

	sent, err := svc.SendDueReminders(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestRegistrationService_SendDueReminders_RepoError(t *testing.T) {
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockRegistrationNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, 24*time.Hour, log)

	regRepo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.SendDueReminders(context.Background())

	require.Error(t, err)
}
