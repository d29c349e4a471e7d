package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doggyworld/backend/internal/config"
)

// TokenPurpose is carried as a claim so a reset token can never be replayed
// as a session token (or the other way round).
type TokenPurpose string

const (
	PurposeSession TokenPurpose = "session"
	PurposeReset   TokenPurpose = "reset"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

type tokenClaims struct {
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 JWTs over a single process-wide
// secret. Verification is stateless; rotating the secret invalidates all
// outstanding tokens.
type TokenService struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

func NewTokenService(cfg config.AuthConfig) (*TokenService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid SESSION_TOKEN_TTL", ErrMisconfigured)
	}

	resetTTL, err := time.ParseDuration(cfg.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid RESET_TOKEN_TTL", ErrMisconfigured)
	}

	return &TokenService{
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}, nil
}

func (s *TokenService) IssueSession(subject string) (string, error) {
	return s.Issue(subject, PurposeSession, s.sessionTTL)
}

func (s *TokenService) IssueReset(subject string) (string, error) {
	return s.Issue(subject, PurposeReset, s.resetTTL)
}

func (s *TokenService) Issue(subject string, purpose TokenPurpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, expiry and purpose, and returns the subject.
func (s *TokenService) Verify(tokenStr string, purpose TokenPurpose) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Purpose != purpose || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
