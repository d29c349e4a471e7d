package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/doggyworld/backend/internal/client"
	"github.com/doggyworld/backend/internal/config"
	"github.com/doggyworld/backend/internal/db"
	"github.com/doggyworld/backend/internal/model"
	"github.com/doggyworld/backend/internal/template"
)

const mailTimeout = 10 * time.Second

type adminRepo interface {
	CreateAdmin(ctx context.Context, email, name, passwordHash string) (*model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*model.Admin, error)
	UpdateAdminPassword(ctx context.Context, id, passwordHash string) error
}

// AuthService orchestrates the admin credential store, the token service and
// the mail transport.
type AuthService struct {
	repo      adminRepo
	tokens    *TokenService
	mailer    client.Mailer
	clientURL string
}

func NewAuthService(repo adminRepo, tokens *TokenService, mailer client.Mailer, clientURL string) *AuthService {
	return &AuthService{
		repo:      repo,
		tokens:    tokens,
		mailer:    mailer,
		clientURL: strings.TrimRight(clientURL, "/"),
	}
}

// Login checks the credential pair. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	return s.authResponse(admin)
}

// Register creates an account and logs it in immediately.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*model.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin, err := s.repo.CreateAdmin(ctx, email, name, string(hash))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	return s.authResponse(admin)
}

// ForgotPassword issues a short-lived reset token and mails a reset link.
// Whether or not the account exists the caller gets the same generic
// outcome; only the dev transport's preview URL differs.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (previewURL string, err error) {
	if email == "" {
		return "", ErrMissingField
	}

	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			log.Printf("[ForgotPassword] No account for submitted email, responding generically")
			return "", nil
		}
		return "", err
	}

	token, err := s.tokens.IssueReset(admin.ID)
	if err != nil {
		return "", err
	}

	resetLink := s.clientURL + "/admin/reset-password/" + token
	body, err := template.RenderResetPassword(resetLink)
	if err != nil {
		return "", err
	}

	sendCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()

	delivery, err := s.mailer.Send(sendCtx, admin.Email, template.ResetPasswordSubject, body)
	if err != nil {
		log.Printf("[ForgotPassword] Mail delivery failed: %v", err)
		return "", ErrDeliveryFailed
	}

	return delivery.PreviewURL, nil
}

// ResetPassword verifies a reset-purpose token and overwrites the password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrMissingField
	}

	adminID, err := s.tokens.Verify(token, PurposeReset)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetAdminByID(ctx, adminID); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateAdminPassword(ctx, adminID, string(hash)); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

// EnsureAdmin seeds the first admin account from config. It is a no-op when
// seeding is not configured or the account already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, seed config.SeedConfig) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	_, err := s.repo.GetAdminByEmail(ctx, seed.AdminEmail)
	if err == nil {
		return nil
	}
	if !db.IsNoRows(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.repo.CreateAdmin(ctx, seed.AdminEmail, seed.AdminName, string(hash)); err != nil {
		return err
	}

	log.Printf("[EnsureAdmin] Seeded admin account %s", seed.AdminEmail)
	return nil
}

// ParseSessionToken validates a session-purpose token for the middleware.
func (s *AuthService) ParseSessionToken(token string) (*model.AuthAdmin, error) {
	adminID, err := s.tokens.Verify(token, PurposeSession)
	if err != nil {
		return nil, err
	}
	return &model.AuthAdmin{ID: adminID}, nil
}

func (s *AuthService) authResponse(admin *model.Admin) (*model.AuthResponse, error) {
	token, err := s.tokens.IssueSession(admin.ID)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		ID:    admin.ID,
		Email: admin.Email,
		Token: token,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
