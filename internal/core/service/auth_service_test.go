package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/procurex/committee-service/internal/core/domain"
	"github.com/procurex/committee-service/internal/core/ports"
)

type stubTokenStore struct {
	tokens map[string]string // tokenHash -> userID
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Save(_ context.Context, tokenHash, userID string, _ time.Duration) error {
	s.tokens[tokenHash] = userID
	return nil
}

func (s *stubTokenStore) Consume(_ context.Context, tokenHash string) (string, error) {
	userID, ok := s.tokens[tokenHash]
	if !ok {
		return "", domain.ErrResetTokenInvalid
	}
	delete(s.tokens, tokenHash)
	return userID, nil
}

const testJWTSecret = "test-secret"

func newAuthEnv() (*AuthService, *stubUserRepo, *stubTokenStore, *stubMailer) {
	users := &stubUserRepo{}
	tokens := newStubTokenStore()
	mailer := newStubMailer()
	svc := NewAuthService(users, tokens, mailer, testJWTSecret, time.Hour, discardLogger)
	return svc, users, tokens, mailer
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:        "Alice Mwangi",
		Email:       "alice@example.com",
		Password:    "s3curepass",
		Role:        domain.RoleProcurementOfficer,
		EmployeeID:  "E100",
		Department:  "Procurement",
		PhoneNumber: "+254700000001",
		Designation: "Officer",
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected assigned ID")
	}
	if !user.IsActive {
		t.Error("new users must start active")
	}
	if user.PasswordHash == "s3curepass" {
		t.Fatal("password must never be stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3curepass")) != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_Invalid(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	cases := map[string]func(*ports.RegisterInput){
		"missing name":    func(in *ports.RegisterInput) { in.Name = "" },
		"missing email":   func(in *ports.RegisterInput) { in.Email = "" },
		"short password":  func(in *ports.RegisterInput) { in.Password = "abc" },
		"unknown role":    func(in *ports.RegisterInput) { in.Role = "superuser" },
		"missing dept":    func(in *ports.RegisterInput) { in.Department = "" },
		"missing empl id": func(in *ports.RegisterInput) { in.EmployeeID = "" },
	}
	for name, mutate := range cases {
		in := registerInput()
		mutate(&in)
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	registered, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "alice@example.com", "s3curepass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("unexpected user: %+v", user)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != registered.ID {
		t.Errorf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["role"] != domain.RoleProcurementOfficer {
		t.Errorf("unexpected role claim: %v", claims["role"])
	}
	if claims["employee_id"] != "E100" {
		t.Errorf("unexpected employee_id claim: %v", claims["employee_id"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	svc, users, _, _ := newAuthEnv()

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	users.users[0].IsActive = false

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "s3curepass"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

var tokenPattern = regexp.MustCompile(`<strong>([0-9a-f]{64})</strong>`)

func TestAuthService_ForgotPassword_IssuesHashedToken(t *testing.T) {
	svc, _, tokens, mailer := newAuthEnv()

	registered, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last, ok := mailer.last()
	if !ok || last.to != "alice@example.com" {
		t.Fatalf("expected reset mail to alice, got %+v", last)
	}
	match := tokenPattern.FindStringSubmatch(last.body)
	if match == nil {
		t.Fatalf("no raw token in mail body: %s", last.body)
	}
	raw := match[1]

	sum := sha256.Sum256([]byte(raw))
	userID, ok := tokens.tokens[hex.EncodeToString(sum[:])]
	if !ok {
		t.Fatal("store must hold the token hash, not the raw token")
	}
	if userID != registered.ID {
		t.Errorf("token bound to wrong user: %s", userID)
	}
	if _, ok := tokens.tokens[raw]; ok {
		t.Fatal("raw token must never be stored")
	}
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	svc, _, tokens, mailer := newAuthEnv()

	if err := svc.ForgotPassword(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}
	if len(tokens.tokens) != 0 {
		t.Error("no token may be issued for unknown emails")
	}
	if _, ok := mailer.last(); ok {
		t.Error("no mail may be sent for unknown emails")
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	svc, _, _, mailer := newAuthEnv()

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.ForgotPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	last, _ := mailer.last()
	raw := tokenPattern.FindStringSubmatch(last.body)[1]

	if err := svc.ResetPassword(context.Background(), raw, "newpassword"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "newpassword"); err != nil {
		t.Fatalf("new password must log in: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "s3curepass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatal("old password must stop working")
	}

	// Single use: the same token fails the second time.
	if err := svc.ResetPassword(context.Background(), raw, "anotherpass"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	if err := svc.ResetPassword(context.Background(), "deadbeef", "newpassword"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Fatalf("expected ErrResetTokenInvalid, got %v", err)
	}
}

func TestAuthService_UpdatePassword(t *testing.T) {
	svc, _, _, _ := newAuthEnv()

	registered, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), registered.ID, "wrong", "newpassword"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), registered.ID, "s3curepass", "newpassword"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "newpassword"); err != nil {
		t.Fatalf("new password must log in: %v", err)
	}
}
