package ports

import (
	"context"

	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
)

type AdminRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	// EnsureDefault inserts the admin unless one with the same email exists.
	EnsureDefault(ctx context.Context, a *domain.Admin) error
}
