package ports

import (
	"context"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	ListUpcoming(ctx context.Context) ([]*domain.EventDetails, error)
	ListStats(ctx context.Context) ([]*domain.EventStats, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context) (total int, active int, err error)
}
