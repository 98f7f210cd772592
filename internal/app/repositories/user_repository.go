package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
)

// UserRepository handles database operations for login accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetActiveByUsername retrieves an active user by username. The display name
// is resolved from the linked hod or faculty row.
func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT u.user_id, u.username, u.password_hash, u.user_type, u.is_active, u.created_at,
		       COALESCE(h.full_name, f.full_name, '') AS full_name
		FROM users u
		LEFT JOIN hod h ON h.user_id = u.user_id
		LEFT JOIN faculty f ON f.user_id = u.user_id
		WHERE u.username = $1 AND u.is_active = TRUE
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.UserType,
		&user.IsActive,
		&user.CreatedAt,
		&user.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetRoleByID resolves the current role of an active user. Called once per
// protected request so role revocation takes effect immediately.
func (r *UserRepository) GetRoleByID(ctx context.Context, userID int64) (models.RoleType, error) {
	query := `SELECT user_type FROM users WHERE user_id = $1 AND is_active = TRUE`

	var role models.RoleType
	err := r.db.QueryRow(ctx, query, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("error resolving user role: %w", err)
	}

	return role, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}
