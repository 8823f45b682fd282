package middleware

import (
	"context"
	"net/http"
	"strings"

	"p2pshare/internal/domain"
	jwtsvc "p2pshare/internal/pkg/jwt"
	"p2pshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth resolves the bearer token to an existing user on every protected
// request. Missing, malformed, invalid or expired credentials — and tokens
// whose subject no longer exists — all yield 401.
func Auth(jwt *jwtsvc.Service, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentification requise")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "En-tête Authorization invalide")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Jeton manquant")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Jeton invalide ou expiré")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Jeton invalide ou expiré")
			return
		}

		c.Set("user_id", user.ID)

		c.Next()
	}
}
