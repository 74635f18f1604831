package ports

import (
	"context"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
)

// RegistrationNotifier delivers captain emails. Calls are fire-and-forget:
// implementations log failures and never return them.
type RegistrationNotifier interface {
	NotifyOutcome(ctx context.Context, r *domain.Registration, e *domain.Event)
	NotifyPromotion(ctx context.Context, r *domain.Registration, e *domain.Event)
	NotifyReminder(ctx context.Context, r *domain.Registration, e *domain.Event)
}
