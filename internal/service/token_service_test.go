package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTTokenService_Validate(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "identity")
	userUid := uuid.New()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   userUid.String(),
		"email": "jo@example.com",
		"iss":   "identity",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userUid, claims.UserUid)
	assert.Equal(t, "jo@example.com", claims.Email)
}

func TestJWTTokenService_Validate_Errors(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "identity")
	userUid := uuid.New()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{
			"sub": userUid.String(), "iss": "identity",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"expired", signToken(t, testSecret, jwt.MapClaims{
			"sub": userUid.String(), "iss": "identity",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})},
		{"wrong issuer", signToken(t, testSecret, jwt.MapClaims{
			"sub": userUid.String(), "iss": "someone-else",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"missing subject", signToken(t, testSecret, jwt.MapClaims{
			"iss": "identity", "exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"malformed subject", signToken(t, testSecret, jwt.MapClaims{
			"sub": "not-a-uuid", "iss": "identity",
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assertAppError(t, err, "REG_003")
		})
	}
}

func TestJWTTokenService_Validate_NoIssuerConfigured(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "")

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Validate(tokenString)
	require.NoError(t, err, "issuer check is skipped when not configured")
}
