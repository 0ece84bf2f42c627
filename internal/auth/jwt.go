package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
)

// TokenTTL is how long an issued identity token stays valid.
const TokenTTL = 14 * 24 * time.Hour

var jwtSecret string

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// Claims is the identity embedded in a token.
type Claims struct {
	UserID   uint
	Username string
	Email    string
	Mobile   string
}

func GenerateJWT(user Claims) (string, error) {
	return generateWithExpiry(user, time.Now().Add(TokenTTL))
}

func generateWithExpiry(user Claims, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.UserID,
		"username": user.Username,
		"email":    user.Email,
		"mobile":   user.Mobile,
		"exp":      expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT validates a token string and extracts the identity claims.
// Expired tokens are reported distinctly from malformed or forged ones.
func VerifyJWT(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, apperr.Wrap(apperr.ExpiredToken, "token expired", err)
		}
		return Claims{}, apperr.Wrap(apperr.InvalidToken, "invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, apperr.New(apperr.InvalidToken, "invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Claims{}, apperr.New(apperr.InvalidToken, "invalid token claims")
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	mobile, _ := claims["mobile"].(string)

	return Claims{
		UserID:   uint(userID),
		Username: username,
		Email:    email,
		Mobile:   mobile,
	}, nil
}
