package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
	"github.com/yoones-dev/portfolio-api/internal/auth"
	"github.com/yoones-dev/portfolio-api/internal/types"
)

type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// AuthMiddleware guards protected routes. The token is read from the
// Authorization header first, falling back to the access_token cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Response{
				StatusCode: http.StatusUnauthorized,
				Message:    "authentication required",
			})
			return
		}

		claims, err := auth.VerifyJWT(tokenString)

		if err != nil {
			status, message := apperr.StatusMessage(err)
			ctx.AbortWithStatusJSON(status, types.Response{
				StatusCode: status,
				Message:    message,
			})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
			Mobile:   claims.Mobile,
		})
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := ctx.Cookie(types.AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}
