package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const registrationColumns = `id, event_id, team_name, team_size,
		captain_first_name, captain_last_name, captain_email, captain_phone,
		experience, how_heard_about, notes, status, reminder_sent, created_at`

func scanRegistration(row interface{ Scan(...any) error }) (*domain.Registration, error) {
	var reg domain.Registration
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.TeamName, &reg.TeamSize,
		&reg.CaptainFirstName, &reg.CaptainLastName, &reg.CaptainEmail, &reg.CaptainPhone,
		&reg.Experience, &reg.HowHeardAbout, &reg.Notes, &reg.Status,
		&reg.ReminderSent, &reg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) Register(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем мероприятие: решение о статусе принимается под замком
	var eventStatus domain.EventStatus
	var maxTeams int
	lockQuery := `SELECT status, max_teams FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, reg.EventID).Scan(&eventStatus, &maxTeams); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if !eventStatus.AcceptsRegistrations() {
		return nil, domain.ErrRegistrationClosed
	}

	var confirmed int
	countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`
	if err = tx.QueryRowContext(
		ctx, countQuery, reg.EventID, domain.RegistrationStatusConfirmed,
	).Scan(&confirmed); err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	reg.Status = domain.DecideAdmission(confirmed, maxTeams)

	insertQuery := `INSERT INTO registrations (id, event_id, team_name, team_size,
						captain_first_name, captain_last_name, captain_email, captain_phone,
						experience, how_heard_about, notes, status, reminder_sent, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		reg.ID, reg.EventID, reg.TeamName, reg.TeamSize,
		reg.CaptainFirstName, reg.CaptainLastName, reg.CaptainEmail, reg.CaptainPhone,
		reg.Experience, reg.HowHeardAbout, reg.Notes, reg.Status, false, reg.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	// Последнее подтверждённое место закрывает мероприятие
	if reg.Status == domain.RegistrationStatusConfirmed && domain.FillsLastSlot(confirmed, maxTeams) {
		if _, err = tx.ExecContext(
			ctx,
			`UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`,
			reg.EventID, domain.EventStatusFull,
		); err != nil {
			return nil, fmt.Errorf("mark event full: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) Cancel(ctx context.Context, id string) (*domain.Registration, *domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	if err = tx.QueryRowContext(
		ctx, `SELECT event_id FROM registrations WHERE id = $1`, id,
	).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRegistrationNotFound
		}
		return nil, nil, fmt.Errorf("get registration event: %w", err)
	}

	// Всегда сначала замок на мероприятии, затем на регистрациях
	var eventStatus domain.EventStatus
	var maxTeams int
	if err = tx.QueryRowContext(
		ctx, `SELECT status, max_teams FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&eventStatus, &maxTeams); err != nil {
		return nil, nil, fmt.Errorf("lock event: %w", err)
	}

	row := tx.QueryRowContext(
		ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = $1 FOR UPDATE`, id,
	)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRegistrationNotFound
		}
		return nil, nil, fmt.Errorf("scan registration: %w", err)
	}

	if reg.Status == domain.RegistrationStatusCancelled {
		return nil, nil, domain.ErrAlreadyCancelled
	}
	wasConfirmed := reg.Status == domain.RegistrationStatusConfirmed

	if _, err = tx.ExecContext(
		ctx, `UPDATE registrations SET status = $2 WHERE id = $1`,
		id, domain.RegistrationStatusCancelled,
	); err != nil {
		return nil, nil, fmt.Errorf("cancel registration: %w", err)
	}
	reg.Status = domain.RegistrationStatusCancelled

	var promoted *domain.Registration
	if wasConfirmed {
		promoted, err = r.promoteOldestWaitlisted(ctx, tx, eventID, "")
		if err != nil {
			return nil, nil, err
		}
		// Место освободилось и никто не ждёт
		if promoted == nil && eventStatus == domain.EventStatusFull {
			if _, err = tx.ExecContext(
				ctx, `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`,
				eventID, domain.EventStatusActive,
			); err != nil {
				return nil, nil, fmt.Errorf("reopen event: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return reg, promoted, nil
}

func (r *RegistrationRepository) Override(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, *domain.Registration, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var eventID string
	if err = tx.QueryRowContext(
		ctx, `SELECT event_id FROM registrations WHERE id = $1`, id,
	).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRegistrationNotFound
		}
		return nil, nil, fmt.Errorf("get registration event: %w", err)
	}

	var eventStatus domain.EventStatus
	var maxTeams int
	if err = tx.QueryRowContext(
		ctx, `SELECT status, max_teams FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&eventStatus, &maxTeams); err != nil {
		return nil, nil, fmt.Errorf("lock event: %w", err)
	}

	row := tx.QueryRowContext(
		ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = $1 FOR UPDATE`, id,
	)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRegistrationNotFound
		}
		return nil, nil, fmt.Errorf("scan registration: %w", err)
	}

	if reg.Status == status {
		if err = tx.Commit(); err != nil {
			return nil, nil, fmt.Errorf("commit: %w", err)
		}
		return reg, nil, nil
	}
	prev := reg.Status

	var confirmed int
	if err = tx.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
		eventID, domain.RegistrationStatusConfirmed,
	).Scan(&confirmed); err != nil {
		return nil, nil, fmt.Errorf("count confirmed: %w", err)
	}

	if status == domain.RegistrationStatusConfirmed && confirmed >= maxTeams {
		return nil, nil, domain.ErrEventAtCapacity
	}

	if _, err = tx.ExecContext(
		ctx, `UPDATE registrations SET status = $2 WHERE id = $1`, id, status,
	); err != nil {
		// Реактивация отменённой записи может столкнуться с занятым именем
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, nil, domain.ErrDuplicateRegistration
		}
		return nil, nil, fmt.Errorf("override registration: %w", err)
	}
	reg.Status = status

	var promoted *domain.Registration
	switch {
	case status == domain.RegistrationStatusConfirmed:
		if domain.FillsLastSlot(confirmed, maxTeams) && eventStatus != domain.EventStatusFull {
			if _, err = tx.ExecContext(
				ctx, `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`,
				eventID, domain.EventStatusFull,
			); err != nil {
				return nil, nil, fmt.Errorf("mark event full: %w", err)
			}
		}
	case prev == domain.RegistrationStatusConfirmed:
		// Понижение или отмена подтверждённой команды освобождает место
		promoted, err = r.promoteOldestWaitlisted(ctx, tx, eventID, id)
		if err != nil {
			return nil, nil, err
		}
		if promoted == nil && eventStatus == domain.EventStatusFull {
			if _, err = tx.ExecContext(
				ctx, `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`,
				eventID, domain.EventStatusActive,
			); err != nil {
				return nil, nil, fmt.Errorf("reopen event: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return reg, promoted, nil
}

// promoteOldestWaitlisted confirms the longest waiting team of the event,
// skipping excludeID when set. Returns nil when the waitlist is empty.
func (r *RegistrationRepository) promoteOldestWaitlisted(ctx context.Context, tx *sql.Tx, eventID, excludeID string) (*domain.Registration, error) {
	row := tx.QueryRowContext(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE event_id = $1 AND status = $2 AND id <> $3
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE`,
		eventID, domain.RegistrationStatusWaitlist, excludeID,
	)
	next, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("pick waitlisted: %w", err)
	}

	if _, err = tx.ExecContext(
		ctx, `UPDATE registrations SET status = $2 WHERE id = $1`,
		next.ID, domain.RegistrationStatusConfirmed,
	); err != nil {
		return nil, fmt.Errorf("promote registration: %w", err)
	}
	next.Status = domain.RegistrationStatusConfirmed

	return next, nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) FindActive(ctx context.Context, eventID, teamName string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id = $1 AND team_name = $2 AND status <> $3
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, teamName, domain.RegistrationStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("find active registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context, f domain.RegistrationFilter) ([]*domain.Registration, int, error) {
	where := `($1 = '' OR event_id = $1) AND ($2 = '' OR status = $2)`

	var total int
	countRow, err := r.db.QueryRowWithRetry(
		ctx, r.strategy,
		`SELECT COUNT(*) FROM registrations WHERE `+where,
		f.EventID, f.Status,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}
	if err = countRow.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan registrations count: %w", err)
	}

	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE ` + where + `
			  ORDER BY created_at DESC
			  LIMIT $3 OFFSET $4`

	offset := (f.Page - 1) * f.Limit
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, f.EventID, f.Status, f.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, total, rows.Err()
}

func (r *RegistrationRepository) ListConfirmedByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id = $1 AND status = $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.RegistrationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list confirmed registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) Recent(ctx context.Context, limit int) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) Counts(ctx context.Context) (int, int, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM registrations`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, domain.RegistrationStatusConfirmed)
	if err != nil {
		return 0, 0, fmt.Errorf("count registrations: %w", err)
	}

	var total, confirmed int
	if err = row.Scan(&total, &confirmed); err != nil {
		return 0, 0, fmt.Errorf("scan registration counts: %w", err)
	}

	return total, confirmed, nil
}

func (r *RegistrationRepository) ClaimDueReminders(ctx context.Context, within time.Duration) ([]*domain.Registration, error) {
	query := `
		UPDATE registrations reg
		SET reminder_sent = TRUE
		FROM events e
		WHERE reg.event_id = e.id
		  AND reg.status = $1
		  AND reg.reminder_sent = FALSE
		  AND e.status NOT IN ($2, $3)
		  AND e.event_date >= CURRENT_DATE
		  AND e.event_date <= NOW() + make_interval(secs => $4)
		RETURNING reg.id, reg.event_id, reg.team_name, reg.team_size,
				  reg.captain_first_name, reg.captain_last_name, reg.captain_email, reg.captain_phone,
				  reg.experience, reg.how_heard_about, reg.notes, reg.status, reg.reminder_sent, reg.created_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RegistrationStatusConfirmed,
		domain.EventStatusCancelled, domain.EventStatusCompleted,
		within.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("claim due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}
