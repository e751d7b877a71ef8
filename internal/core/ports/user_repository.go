package ports

import (
	"context"
	"time"

	"github.com/procurex/committee-service/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	// Create inserts a new user. A duplicate email or employee ID fails with
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// UpdatePassword replaces the stored hash and records when it changed.
	UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error
}
