package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jorism/userapi/internal/core/domain"
	"github.com/jorism/userapi/internal/core/repository"
)

// bcryptCost matches the cost the original data was hashed with, so
// existing hashes keep verifying.
const bcryptCost = 10

const outputColumns = "id, username, email, created_at, updated_at"

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users", outputColumns)

	var users []*domain.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, domain.StoreError("Failed to retrieve users", err)
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = ?", outputColumns)

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StoreError(fmt.Sprintf("Failed to retrieve user with id %d", id), err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StoreError(fmt.Sprintf("Failed to retrieve user with email %s", email), err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, input domain.UserInput) (*domain.User, error) {
	// Pre-check gives a clean duplicate error; a lost race still trips the
	// UNIQUE constraint below and surfaces as a store failure.
	existing, err := r.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.DuplicateError("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, domain.StoreError("Failed to hash password", err)
	}

	user := domain.NewUser(input.Username, input.Email, string(hash))

	query := `
		INSERT INTO users (username, email, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return nil, domain.StoreError("Failed to create user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, domain.StoreError("Failed to create user", err)
	}

	created, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.StoreError("Failed to retrieve created user", nil)
	}
	return created, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if patch.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, domain.StoreError(fmt.Sprintf("Failed to update user with id %d", id), err)
		}
		sets = append(sets, "password = ?")
		args = append(args, string(hash))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, domain.StoreError(fmt.Sprintf("Failed to update user with id %d", id), err)
	}

	return r.FindByID(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return false, domain.StoreError(fmt.Sprintf("Failed to delete user with id %d", id), err)
	}
	return true, nil
}

func (r *userRepository) ValidatePassword(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.StoreError("Failed to validate password", err)
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil
	}
	return user, nil
}
