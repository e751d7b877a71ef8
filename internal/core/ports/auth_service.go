package ports

import (
	"context"

	"github.com/procurex/committee-service/internal/core/domain"
)

// RegisterInput carries a new user registration. All fields are required.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	EmployeeID  string
	Department  string
	PhoneNumber string
	Designation string
}

// AuthService implements registration, login and the password lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ForgotPassword issues a reset token and mails it to the user. It
	// deliberately succeeds for unknown emails so callers cannot probe for
	// registered accounts.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
