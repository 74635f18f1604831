package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	eventRepo ports.EventRepo
	logger    logger.Logger
}

func NewEventService(eventRepo ports.EventRepo, logger logger.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		Date:            in.Date,
		StartTime:       in.StartTime,
		DurationMinutes: in.DurationMinutes,
		MaxTeams:        in.MaxTeams,
		MinTeamSize:     in.MinTeamSize,
		MaxTeamSize:     in.MaxTeamSize,
		Location:        in.Location,
		Price:           in.Price,
		Status:          domain.EventStatusActive,
	}
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.eventRepo.GetDetails(ctx, id)
}

func (s *EventService) ListUpcoming(ctx context.Context) ([]*domain.EventDetails, error) {
	return s.eventRepo.ListUpcoming(ctx)
}

func (s *EventService) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	details, err := s.eventRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	event := &details.Event

	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.Date != nil {
		event.Date = *in.Date
	}
	if in.StartTime != nil {
		event.StartTime = *in.StartTime
	}
	if in.DurationMinutes != nil {
		event.DurationMinutes = *in.DurationMinutes
	}
	if in.MaxTeams != nil {
		event.MaxTeams = *in.MaxTeams
	}
	if in.MinTeamSize != nil {
		event.MinTeamSize = *in.MinTeamSize
	}
	if in.MaxTeamSize != nil {
		event.MaxTeamSize = *in.MaxTeamSize
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.Price != nil {
		event.Price = *in.Price
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown event status", domain.ErrValidation)
		}
		event.Status = *in.Status
	}

	if err = validateEvent(event); err != nil {
		return nil, err
	}

	// Расширение лимита снова открывает регистрацию
	if in.Status == nil && event.Status == domain.EventStatusFull && details.ConfirmedCount < event.MaxTeams {
		event.Status = domain.EventStatusActive
	}

	if err = s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated", logger.String("event_id", event.ID))

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))

	return nil
}

func validateEvent(e *domain.Event) error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case e.Date.IsZero():
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	case !validStartTime(e.StartTime):
		return fmt.Errorf("%w: start time must be HH:MM", domain.ErrValidation)
	case e.DurationMinutes < domain.MinDurationMins || e.DurationMinutes > domain.MaxDurationMins:
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			domain.ErrValidation, domain.MinDurationMins, domain.MaxDurationMins)
	case e.MaxTeams < domain.MinMaxTeams || e.MaxTeams > domain.MaxMaxTeams:
		return fmt.Errorf("%w: max teams must be between %d and %d",
			domain.ErrValidation, domain.MinMaxTeams, domain.MaxMaxTeams)
	case e.MinTeamSize < domain.MinTeamSize || e.MaxTeamSize > domain.MaxTeamSize:
		return fmt.Errorf("%w: team size must be between %d and %d",
			domain.ErrValidation, domain.MinTeamSize, domain.MaxTeamSize)
	case e.MinTeamSize > e.MaxTeamSize:
		return fmt.Errorf("%w: min team size exceeds max team size", domain.ErrValidation)
	case e.Price < 0:
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}

func validStartTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}
