package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/metrics"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	regRepo        ports.RegistrationRepo
	eventRepo      ports.EventRepo
	notifier       ports.RegistrationNotifier
	reminderWindow time.Duration
	logger         logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	notifier ports.RegistrationNotifier,
	reminderWindow time.Duration,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:        regRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
		reminderWindow: reminderWindow,
		logger:         logger,
	}
}

func (s *RegistrationService) RegisterTeam(ctx context.Context, in domain.RegisterTeamInput) (*domain.Registration, error) {
	if in.Experience == "" {
		in.Experience = domain.ExperienceBeginner
	}
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if !event.Status.AcceptsRegistrations() {
		return nil, domain.ErrRegistrationClosed
	}
	if eventInPast(event.Date) {
		return nil, domain.ErrEventInPast
	}
	if in.TeamSize < event.MinTeamSize || in.TeamSize > event.MaxTeamSize {
		return nil, domain.ErrTeamSizeOutOfRange
	}

	// Ранняя проверка имени; гонку закрывает частичный уникальный индекс
	if _, err = s.regRepo.FindActive(ctx, in.EventID, in.TeamName); err == nil {
		return nil, domain.ErrTeamNameTaken
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check team name: %w", err)
	}

	reg := &domain.Registration{
		ID:               uuid.New().String(),
		EventID:          in.EventID,
		TeamName:         in.TeamName,
		TeamSize:         in.TeamSize,
		CaptainFirstName: in.CaptainFirstName,
		CaptainLastName:  in.CaptainLastName,
		CaptainEmail:     in.CaptainEmail,
		CaptainPhone:     in.CaptainPhone,
		Experience:       in.Experience,
		HowHeardAbout:    in.HowHeardAbout,
		Notes:            in.Notes,
		CreatedAt:        time.Now().UTC(),
	}

	reg, err = s.regRepo.Register(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("register team: %w", err)
	}

	metrics.RecordRegistration(string(reg.Status))
	s.logger.Info("team registered",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", reg.EventID),
		logger.String("team_name", reg.TeamName),
		logger.String("status", string(reg.Status)),
	)

	go s.notifier.NotifyOutcome(context.WithoutCancel(ctx), reg, event)

	return reg, nil
}

func (s *RegistrationService) Cancel(ctx context.Context, id string) (*domain.Registration, error) {
	cancelled, promoted, err := s.regRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}

	metrics.RecordCancellation()
	s.logger.Info("registration cancelled",
		logger.String("registration_id", cancelled.ID),
		logger.String("event_id", cancelled.EventID),
	)

	if promoted != nil {
		metrics.RecordPromotion()
		s.logger.Info("waitlisted team promoted",
			logger.String("registration_id", promoted.ID),
			logger.String("team_name", promoted.TeamName),
		)

		event, err := s.eventRepo.GetByID(ctx, promoted.EventID)
		if err != nil {
			s.logger.Error("failed to get event for promotion notification",
				logger.String("event_id", promoted.EventID),
				logger.String("error", err.Error()),
			)
			return cancelled, nil
		}
		go s.notifier.NotifyPromotion(context.WithoutCancel(ctx), promoted, event)
	}

	return cancelled, nil
}

func (s *RegistrationService) Get(ctx context.Context, id string) (*domain.Registration, error) {
	return s.regRepo.GetByID(ctx, id)
}

func (s *RegistrationService) CheckTeamName(ctx context.Context, eventID, teamName string) (*domain.TeamNameCheck, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	reg, err := s.regRepo.FindActive(ctx, eventID, teamName)
	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			return &domain.TeamNameCheck{Taken: false}, nil
		}
		return nil, fmt.Errorf("find registration: %w", err)
	}

	return &domain.TeamNameCheck{Taken: true, Status: reg.Status}, nil
}

// SendDueReminders claims confirmed registrations whose event starts within
// the reminder window and emails the captains. Returns the claimed count.
func (s *RegistrationService) SendDueReminders(ctx context.Context) (int, error) {
	due, err := s.regRepo.ClaimDueReminders(ctx, s.reminderWindow)
	if err != nil {
		return 0, fmt.Errorf("claim due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("reminders claimed", logger.Int("count", len(due)))
		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return len(due), nil
}

func (s *RegistrationService) notifyReminders(ctx context.Context, regs []*domain.Registration) {
	events := make(map[string]*domain.Event)
	for _, reg := range regs {
		event, ok := events[reg.EventID]
		if !ok {
			var err error
			event, err = s.eventRepo.GetByID(ctx, reg.EventID)
			if err != nil {
				s.logger.Error("failed to get event for reminder",
					logger.String("event_id", reg.EventID),
				)
				continue
			}
			events[reg.EventID] = event
		}

		s.notifier.NotifyReminder(ctx, reg, event)
	}
}

func validateRegisterInput(in domain.RegisterTeamInput) error {
	switch {
	case utf8.RuneCountInString(strings.TrimSpace(in.TeamName)) < 3 ||
		utf8.RuneCountInString(in.TeamName) > 50:
		return fmt.Errorf("%w: team name must be 3-50 characters", domain.ErrValidation)
	case strings.TrimSpace(in.CaptainFirstName) == "" || strings.TrimSpace(in.CaptainLastName) == "":
		return fmt.Errorf("%w: captain name is required", domain.ErrValidation)
	case strings.TrimSpace(in.CaptainEmail) == "" || !strings.Contains(in.CaptainEmail, "@"):
		return fmt.Errorf("%w: captain email is invalid", domain.ErrValidation)
	case strings.TrimSpace(in.CaptainPhone) == "":
		return fmt.Errorf("%w: captain phone is required", domain.ErrValidation)
	case !in.Experience.Valid():
		return fmt.Errorf("%w: unknown experience level", domain.ErrValidation)
	}
	return nil
}

func eventInPast(date time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return date.Before(today)
}
