package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/metrics"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
	recentLimit      = 10
)

// AdminClaims is the JWT payload issued on login and checked by the auth
// middleware.
type AdminClaims struct {
	AdminID string `json:"admin_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type AdminService struct {
	adminRepo ports.AdminRepo
	eventRepo ports.EventRepo
	regRepo   ports.RegistrationRepo
	notifier  ports.RegistrationNotifier
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    logger.Logger
}

func NewAdminService(
	adminRepo ports.AdminRepo,
	eventRepo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	notifier ports.RegistrationNotifier,
	jwtSecret string,
	tokenTTL time.Duration,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		eventRepo: eventRepo,
		regRepo:   regRepo,
		notifier:  notifier,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AdminService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get admin: %w", err)
	}

	if !admin.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := AdminClaims{
		AdminID: admin.ID,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("admin logged in", logger.String("admin_id", admin.ID))

	return token, admin, nil
}

func (s *AdminService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	totalEvents, activeEvents, err := s.eventRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("event counts: %w", err)
	}

	totalRegs, confirmedRegs, err := s.regRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("registration counts: %w", err)
	}

	recent, err := s.regRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent registrations: %w", err)
	}

	stats, err := s.eventRepo.ListStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("event stats: %w", err)
	}

	return &domain.Dashboard{
		Stats: domain.DashboardStats{
			TotalEvents:            totalEvents,
			ActiveEvents:           activeEvents,
			TotalRegistrations:     totalRegs,
			ConfirmedRegistrations: confirmedRegs,
		},
		RecentRegistrations: recent,
		EventStats:          stats,
	}, nil
}

func (s *AdminService) ListRegistrations(ctx context.Context, f domain.RegistrationFilter) ([]*domain.Registration, int, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown registration status", domain.ErrValidation)
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}

	return s.regRepo.List(ctx, f)
}

func (s *AdminService) ExportConfirmed(ctx context.Context, eventID string) (*domain.Export, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	regs, err := s.regRepo.ListConfirmedByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list confirmed: %w", err)
	}

	var buf bytes.Buffer
	// BOM, иначе Excel не понимает кириллицу
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err = w.Write([]string{
		"Команда", "Участников", "Капитан", "Email", "Телефон", "Опыт", "Комментарий", "Зарегистрирована",
	}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, reg := range regs {
		record := []string{
			reg.TeamName,
			strconv.Itoa(reg.TeamSize),
			reg.CaptainFirstName + " " + reg.CaptainLastName,
			reg.CaptainEmail,
			reg.CaptainPhone,
			string(reg.Experience),
			reg.Notes,
			reg.CreatedAt.Format("02.01.2006 15:04"),
		}
		if err = w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &domain.Export{
		Filename: exportFilename(event),
		Data:     buf.Bytes(),
	}, nil
}

func (s *AdminService) OverrideStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown registration status", domain.ErrValidation)
	}

	updated, promoted, err := s.regRepo.Override(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("override status: %w", err)
	}

	if status == domain.RegistrationStatusCancelled {
		metrics.RecordCancellation()
	}
	s.logger.Info("registration status overridden",
		logger.String("registration_id", updated.ID),
		logger.String("status", string(updated.Status)),
	)

	if promoted != nil {
		metrics.RecordPromotion()

		event, err := s.eventRepo.GetByID(ctx, promoted.EventID)
		if err != nil {
			s.logger.Error("failed to get event for promotion notification",
				logger.String("event_id", promoted.EventID),
				logger.String("error", err.Error()),
			)
			return updated, nil
		}
		go s.notifier.NotifyPromotion(context.WithoutCancel(ctx), promoted, event)
	}

	return updated, nil
}

func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, email, password, name string) error {
	if password == "" {
		s.logger.Warn("default admin password is empty, bootstrap skipped")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err = s.adminRepo.EnsureDefault(ctx, admin); err != nil {
		return err
	}

	return nil
}

func exportFilename(e *domain.Event) string {
	title := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == '\\' || r == '"':
			return -1
		default:
			return r
		}
	}, e.Title)

	return fmt.Sprintf("%s_%s.csv", title, e.Date.Format("2006-01-02"))
}
