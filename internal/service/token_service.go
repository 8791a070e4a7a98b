package service

import (
	"fmt"

	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService implements ports.TokenService for HS256 tokens issued by
// the identity provider. The subject claim carries the person uid.
type JWTTokenService struct {
	secret []byte
	issuer string
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Validate parses and verifies a bearer token, returning its claims.
func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("parsing token: %w", err))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("invalid token claims"))
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("missing subject claim"))
	}

	userUid, err := uuid.Parse(sub)
	if err != nil {
		return nil, apperror.ErrInvalidToken(fmt.Errorf("invalid user uid in token: %w", err))
	}

	email, _ := claims["email"].(string)

	return &ports.TokenClaims{
		UserUid: userUid,
		Email:   email,
	}, nil
}
