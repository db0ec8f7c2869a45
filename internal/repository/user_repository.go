package repository

import (
	"context"

	"github.com/thanarat-p/eventbook/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user record
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID, returning nil when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email, returning nil when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the email is registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
