package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/doggyworld/backend/internal/client"
	"github.com/doggyworld/backend/internal/config"
	"github.com/doggyworld/backend/internal/model"
)

type fakeAdminRepo struct {
	byEmail map[string]*model.Admin
	nextID  int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*model.Admin)}
}

func (f *fakeAdminRepo) CreateAdmin(ctx context.Context, email, name, passwordHash string) (*model.Admin, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	admin := &model.Admin{
		ID:           fmt.Sprintf("admin-%d", f.nextID),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	f.byEmail[email] = admin
	return admin, nil
}

func (f *fakeAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	if admin, ok := f.byEmail[email]; ok {
		return admin, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	for _, admin := range f.byEmail {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAdminRepo) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	for _, admin := range f.byEmail {
		if admin.ID == id {
			admin.PasswordHash = passwordHash
			return nil
		}
	}
	return pgx.ErrNoRows
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) (*client.Delivery, error) {
	if f.fail {
		return nil, errors.New("transport down")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return &client.Delivery{MessageID: "m1", PreviewURL: "http://localhost:8080/api/dev/mail/m1"}, nil
}

func newTestAuthService(t *testing.T, mailer client.Mailer) (*AuthService, *fakeAdminRepo, *TokenService) {
	t.Helper()
	repo := newFakeAdminRepo()
	tokens := newTestTokenService(t)
	return NewAuthService(repo, tokens, mailer, "http://localhost:5173/"), repo, tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, tokens := newTestAuthService(t, &fakeMailer{})

	reg, err := svc.Register(context.Background(), "a@b.com", "Secret123!", "Ada")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("register returned no token")
	}

	login, err := svc.Login(context.Background(), "a@b.com", "Secret123!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	subject, err := tokens.Verify(login.Token, PurposeSession)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != reg.ID {
		t.Fatalf("token subject = %q, want %q", subject, reg.ID)
	}
}

func TestLoginUniformError(t *testing.T) {
	svc, _, _ := newTestAuthService(t, &fakeMailer{})

	if _, err := svc.Register(context.Background(), "a@b.com", "Secret123!", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "a@b.com", "nope")
	_, unknownEmail := svc.Login(context.Background(), "nobody@b.com", "Secret123!")

	if !errors.Is(wrongPassword, ErrInvalidCredential) || !errors.Is(unknownEmail, ErrInvalidCredential) {
		t.Fatalf("wrongPassword = %v, unknownEmail = %v, both must be ErrInvalidCredential", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("error texts differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t, &fakeMailer{})

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"a@b.com", ""},
		{"", ""},
	} {
		if _, err := svc.Login(context.Background(), tc.email, tc.password); !errors.Is(err, ErrMissingField) {
			t.Fatalf("Login(%q, %q): err = %v, want ErrMissingField", tc.email, tc.password, err)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t, &fakeMailer{})

	if _, err := svc.Register(context.Background(), "a@b.com", "pw123456", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "a@b.com", "other123", ""); !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("err = %v, want ErrDuplicateAccount", err)
	}
}

func TestForgotPasswordUnknownEmailIsGeneric(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _, _ := newTestAuthService(t, mailer)

	previewURL, err := svc.ForgotPassword(context.Background(), "nobody@b.com")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if previewURL != "" {
		t.Fatalf("previewURL = %q, want empty", previewURL)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("mail sent for unknown account")
	}
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	mailer := &fakeMailer{}
	svc, _, _ := newTestAuthService(t, mailer)

	if _, err := svc.Register(context.Background(), "a@b.com", "Secret123!", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	previewURL, err := svc.ForgotPassword(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if previewURL == "" {
		t.Fatal("expected dev preview URL")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mailer.sent))
	}
	if mailer.sent[0].to != "a@b.com" {
		t.Fatalf("recipient = %q", mailer.sent[0].to)
	}
}

func TestForgotPasswordDeliveryFailure(t *testing.T) {
	svc, _, _ := newTestAuthService(t, &fakeMailer{fail: true})

	if _, err := svc.Register(context.Background(), "a@b.com", "Secret123!", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.ForgotPassword(context.Background(), "a@b.com"); !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("err = %v, want ErrDeliveryFailed", err)
	}
}

func TestResetPasswordFlow(t *testing.T) {
	svc, _, tokens := newTestAuthService(t, &fakeMailer{})

	reg, err := svc.Register(context.Background(), "a@b.com", "OldPass123", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resetToken, err := tokens.IssueReset(reg.ID)
	if err != nil {
		t.Fatalf("IssueReset: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), resetToken, "NewPass123"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@b.com", "OldPass123"); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("old password still works: %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", "NewPass123"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	svc, _, tokens := newTestAuthService(t, &fakeMailer{})

	reg, err := svc.Register(context.Background(), "a@b.com", "Secret123!", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	sessionToken, err := tokens.IssueSession(reg.ID)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), sessionToken, "NewPass123"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestResetPasswordMissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t, &fakeMailer{})

	if err := svc.ResetPassword(context.Background(), "", "pw"); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing token: err = %v", err)
	}
	if err := svc.ResetPassword(context.Background(), "tok", ""); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing password: err = %v", err)
	}
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc, repo, _ := newTestAuthService(t, &fakeMailer{})
	seed := config.SeedConfig{AdminEmail: "root@b.com", AdminPassword: "Seed1234", AdminName: "Super Admin"}

	if err := svc.EnsureAdmin(context.Background(), seed); err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), seed); err != nil {
		t.Fatalf("EnsureAdmin twice: %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("have %d accounts, want 1", len(repo.byEmail))
	}

	if _, err := svc.Login(context.Background(), "root@b.com", "Seed1234"); err != nil {
		t.Fatalf("seeded login: %v", err)
	}
}
