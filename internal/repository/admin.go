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

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, name, password_hash, role, is_active, created_at
			  FROM admins
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `SELECT id, email, name, password_hash, role, is_active, created_at
			  FROM admins
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) EnsureDefault(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (id, email, name, password_hash, role, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (email) DO NOTHING`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Email, a.Name, a.PasswordHash, a.Role, a.IsActive, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("ensure default admin: %w", err)
	}

	return nil
}
