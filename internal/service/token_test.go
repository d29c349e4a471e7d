package service

import (
	"errors"
	"testing"
	"time"

	"github.com/doggyworld/backend/internal/config"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{
		JWTSecret:  "test-secret",
		SessionTTL: "720h",
		ResetTTL:   "15m",
	})
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueSession("admin-1")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	subject, err := svc.Verify(token, PurposeSession)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "admin-1" {
		t.Fatalf("subject = %q, want %q", subject, "admin-1")
	}
}

func TestTokenPurposeMismatch(t *testing.T) {
	svc := newTestTokenService(t)

	reset, err := svc.IssueReset("admin-1")
	if err != nil {
		t.Fatalf("IssueReset: %v", err)
	}
	session, err := svc.IssueSession("admin-1")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	if _, err := svc.Verify(reset, PurposeSession); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("reset token as session: err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.Verify(session, PurposeReset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("session token as reset: err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestTokenService(t)

	expired, err := svc.Issue("admin-1", PurposeReset, -time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Verify(expired, PurposeReset); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}

	live, err := svc.Issue("admin-1", PurposeReset, 14*time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Verify(live, PurposeReset); err != nil {
		t.Fatalf("live token rejected: %v", err)
	}
}

func TestTokenTampered(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.IssueSession("admin-1")
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	if _, err := svc.Verify(token+"x", PurposeSession); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token: err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.Verify("not-a-token", PurposeSession); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: err = %v, want ErrInvalidToken", err)
	}
}

func TestTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService(config.AuthConfig{SessionTTL: "720h", ResetTTL: "15m"})
	if !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("err = %v, want ErrMisconfigured", err)
	}
}
