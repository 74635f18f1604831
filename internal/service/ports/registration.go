package ports

import (
	"context"
	"time"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
)

type RegistrationRepo interface {
	// Register runs the admission decision atomically under the event row
	// lock and persists the registration with the decided status.
	Register(ctx context.Context, r *domain.Registration) (*domain.Registration, error)
	// Cancel marks the registration cancelled and, when it held a confirmed
	// slot on a full event, either promotes the oldest waitlisted team or
	// reopens the event. The promoted registration, if any, is returned.
	Cancel(ctx context.Context, id string) (cancelled, promoted *domain.Registration, err error)
	// Override moves a registration to an explicit status while keeping the
	// event status consistent with its confirmed count.
	Override(ctx context.Context, id string, status domain.RegistrationStatus) (updated, promoted *domain.Registration, err error)
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	FindActive(ctx context.Context, eventID, teamName string) (*domain.Registration, error)
	List(ctx context.Context, f domain.RegistrationFilter) ([]*domain.Registration, int, error)
	ListConfirmedByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	Recent(ctx context.Context, limit int) ([]*domain.Registration, error)
	Counts(ctx context.Context) (total int, confirmed int, err error)
	ClaimDueReminders(ctx context.Context, within time.Duration) ([]*domain.Registration, error)
}
