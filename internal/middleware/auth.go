package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/service/ports"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	AdminIDKey   = "admin_id"
	AdminRoleKey = "admin_role"
)

// AdminAuth validates the Bearer token and ensures the admin still exists
// and is active before letting the request through.
func AdminAuth(jwtSecret string, admins ports.AdminRepo, log logger.Logger) ginext.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *ginext.Context) {
		header := c.Request.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authorization required"})
			return
		}

		var claims service.AdminClaims
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), claims.AdminID)
		if err != nil || !admin.IsActive {
			log.Warn("token for missing or inactive admin",
				logger.String("admin_id", claims.AdminID),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(AdminIDKey, admin.ID)
		c.Set(AdminRoleKey, admin.Role)

		c.Next()
	}
}
