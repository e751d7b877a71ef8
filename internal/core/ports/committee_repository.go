package ports

import (
	"context"

	"github.com/procurex/committee-service/internal/core/domain"
)

// CommitteeRepository defines persistence operations for committees.
// Committees are append-only: there are no update or delete operations.
type CommitteeRepository interface {
	// Insert stores a new committee document and returns its generated ID.
	Insert(ctx context.Context, committee *domain.Committee) (string, error)
	// FindByID retrieves one committee with its creator summary joined in.
	// A malformed or unknown id fails with domain.ErrCommitteeNotFound.
	FindByID(ctx context.Context, id string) (*domain.Committee, error)
	// List returns all committees newest-first, creator summaries joined in.
	List(ctx context.Context) ([]*domain.Committee, error)
}
