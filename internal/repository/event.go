package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, title, description, event_date, start_time, duration_minutes,
		max_teams, min_team_size, max_team_size, location, price, status, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.DurationMinutes,
		&e.MaxTeams, &e.MinTeamSize, &e.MaxTeamSize, &e.Location, &e.Price,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, start_time, duration_minutes,
				max_teams, min_team_size, max_team_size, location, price, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.DurationMinutes,
		e.MaxTeams, e.MinTeamSize, e.MaxTeamSize, e.Location, e.Price, e.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.title, e.description, e.event_date, e.start_time, e.duration_minutes,
			e.max_teams, e.min_team_size, e.max_team_size, e.location, e.price, e.status,
			e.created_at, e.updated_at,
			COUNT(reg.id) AS confirmed_count
		FROM events e
		LEFT JOIN registrations reg
			ON reg.event_id = e.id
			AND reg.status = $2
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, domain.RegistrationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("get event details: %w", err)
	}

	var d domain.EventDetails
	err = row.Scan(
		&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Date,
		&d.Event.StartTime, &d.Event.DurationMinutes, &d.Event.MaxTeams,
		&d.Event.MinTeamSize, &d.Event.MaxTeamSize, &d.Event.Location,
		&d.Event.Price, &d.Event.Status, &d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.ConfirmedCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}
	d.AvailableSpots = d.Event.MaxTeams - d.ConfirmedCount
	if d.AvailableSpots < 0 {
		d.AvailableSpots = 0
	}
	d.IsFull = d.ConfirmedCount >= d.Event.MaxTeams

	return &d, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context) ([]*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.title, e.description, e.event_date, e.start_time, e.duration_minutes,
			e.max_teams, e.min_team_size, e.max_team_size, e.location, e.price, e.status,
			e.created_at, e.updated_at,
			COUNT(reg.id) AS confirmed_count
		FROM events e
		LEFT JOIN registrations reg
			ON reg.event_id = e.id
			AND reg.status = $1
		WHERE e.event_date >= CURRENT_DATE
		  AND e.status <> $2
		GROUP BY e.id
		ORDER BY e.event_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.RegistrationStatusConfirmed, domain.EventStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventDetails
	for rows.Next() {
		var d domain.EventDetails
		if err = rows.Scan(
			&d.Event.ID, &d.Event.Title, &d.Event.Description, &d.Event.Date,
			&d.Event.StartTime, &d.Event.DurationMinutes, &d.Event.MaxTeams,
			&d.Event.MinTeamSize, &d.Event.MaxTeamSize, &d.Event.Location,
			&d.Event.Price, &d.Event.Status, &d.Event.CreatedAt, &d.Event.UpdatedAt,
			&d.ConfirmedCount,
		); err != nil {
			return nil, fmt.Errorf("scan event details: %w", err)
		}
		d.AvailableSpots = d.Event.MaxTeams - d.ConfirmedCount
		if d.AvailableSpots < 0 {
			d.AvailableSpots = 0
		}
		d.IsFull = d.ConfirmedCount >= d.Event.MaxTeams
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListStats(ctx context.Context) ([]*domain.EventStats, error) {
	query := `
		SELECT e.id, e.title, e.event_date, e.status, e.max_teams,
			   COUNT(reg.id) AS confirmed_count
		FROM events e
		LEFT JOIN registrations reg
			ON reg.event_id = e.id
			AND reg.status = $1
		GROUP BY e.id
		ORDER BY e.event_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.RegistrationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list event stats: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventStats
	for rows.Next() {
		var s domain.EventStats
		if err = rows.Scan(&s.EventID, &s.Title, &s.Date, &s.Status, &s.MaxTeams, &s.ConfirmedCount); err != nil {
			return nil, fmt.Errorf("scan event stats: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, event_date = $4, start_time = $5,
				  duration_minutes = $6, max_teams = $7, min_team_size = $8,
				  max_team_size = $9, location = $10, price = $11, status = $12,
				  updated_at = NOW()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.DurationMinutes,
		e.MaxTeams, e.MinTeamSize, e.MaxTeamSize, e.Location, e.Price, e.Status,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	// Регистрации удаляются каскадно
	query := `DELETE FROM events WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Counts(ctx context.Context) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM events`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.EventStatusActive)
	if err != nil {
		return 0, 0, fmt.Errorf("count events: %w", err)
	}

	var total, active int
	if err = row.Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("scan event counts: %w", err)
	}

	return total, active, nil
}
