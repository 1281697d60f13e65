package repository

import (
	"context"

	"github.com/jorism/userapi/internal/core/domain"
)

// UserRepository defines the persistence operations for users. Lookups
// report a missing row as a nil user (or false for Delete), never as an
// error; errors mean the store itself failed.
type UserRepository interface {
	// FindAll returns all users without their password hashes.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// FindByID returns the user without its password hash, or nil.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail returns the full row including the password hash, or
	// nil. Internal use only: uniqueness checks and password verification.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create hashes the plaintext password, inserts the row and returns
	// the stored user without its hash.
	Create(ctx context.Context, input domain.UserInput) (*domain.User, error)
	// Update applies the supplied fields only, rehashing the password if
	// present, and returns the stored user without its hash, or nil when
	// no row matches.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	// Delete removes the row and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// ValidatePassword returns the full user when the plaintext matches
	// the stored hash, nil on unknown email or mismatch.
	ValidatePassword(ctx context.Context, email, password string) (*domain.User, error)
}
