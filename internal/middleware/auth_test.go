package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/domain"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signToken(t *testing.T, secret, adminID string) string {
	t.Helper()
	now := time.Now().UTC()
	claims := service.AdminClaims{
		AdminID: adminID,
		Role:    "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func setupAuthRouter(t *testing.T, admins *mocks.MockAdminRepo) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(AdminAuth(testSecret, admins, newTestLogger(t)))
	r.GET("/protected", func(c *ginext.Context) {
		id, _ := c.Get(AdminIDKey)
		c.JSON(http.StatusOK, ginext.H{"admin_id": id})
	})
	return r
}

func TestAdminAuth_Success(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	admins.EXPECT().GetByID(mock.Anything, "a1").
		Return(&domain.Admin{ID: "a1", Role: "admin", IsActive: true}, nil)

	r := setupAuthRouter(t, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "a1"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a1")
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	r := setupAuthRouter(t, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_MalformedToken(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	r := setupAuthRouter(t, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	r := setupAuthRouter(t, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "a1"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_InactiveAdmin(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	admins.EXPECT().GetByID(mock.Anything, "a1").
		Return(&domain.Admin{ID: "a1", Role: "admin", IsActive: false}, nil)

	r := setupAuthRouter(t, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "a1"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_AdminDeleted(t *testing.T) {
	admins := mocks.NewMockAdminRepo(t)
	admins.EXPECT().GetByID(mock.Anything, "a1").Return(nil, domain.ErrAdminNotFound)

	r := setupAuthRouter(t, admins)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "a1"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
