package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoones-dev/portfolio-api/internal/apperr"
)

func initTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())
}

func TestInitJWTSecretMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}

func TestGenerateAndVerify(t *testing.T) {
	initTestSecret(t)

	identity := Claims{
		UserID:   7,
		Username: "yoones",
		Email:    "yoones@example.com",
		Mobile:   "09912209730",
	}

	token, err := GenerateJWT(identity)
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims)
}

func TestVerifyExpired(t *testing.T) {
	initTestSecret(t)

	token, err := generateWithExpiry(Claims{UserID: 7}, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = VerifyJWT(token)
	require.Error(t, err)
	assert.Equal(t, apperr.ExpiredToken, apperr.KindOf(err))
}

func TestVerifyTampered(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateJWT(Claims{UserID: 7})
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))

	_, err = VerifyJWT("not-a-token")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateJWT(Claims{UserID: 7})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	require.NoError(t, InitJWTSecret())

	_, err = VerifyJWT(token)
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidToken, apperr.KindOf(err))
}
