package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/app/models/dto"
	"github.com/wildtrack/wildlife-tracker/internal/db"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

var userTable = table[models.User]{
	name:   "users",
	entity: "user",
	columns: []string{
		"id", "username", "email", "hashed_password", "full_name", "role",
		"is_active", "last_login", "created_at", "updated_at",
	},
	notFound: apperrors.ErrUserNotFound,
}

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, filter dto.UserFilter, window helpers.Window) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error

	// Authentication
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// UserRepository handles user database operations
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

func userValues(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"username":        u.Username,
		"email":           u.Email,
		"hashed_password": u.HashedPassword,
		"full_name":       u.FullName,
		"role":            u.Role,
		"is_active":       u.IsActive,
	}
}

// Create inserts a user and returns the stored row
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return userTable.insert(ctx, r.db.Pool, userValues(user))
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return userTable.get(ctx, r.db.Pool, id)
}

// List retrieves users ordered by id
func (r *UserRepository) List(ctx context.Context, filter dto.UserFilter, window helpers.Window) ([]*models.User, error) {
	where := eqFilter{}.
		add("role", filter.Role, filter.Role != nil).
		add("is_active", filter.IsActive, filter.IsActive != nil)
	return userTable.list(ctx, r.db.Pool, where.sqlizer(), window, "id ASC")
}

// Update overwrites every mutable column of the user, the password hash included
func (r *UserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	return userTable.update(ctx, r.db.Pool, user.ID, userValues(user))
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return userTable.delete(ctx, r.db.Pool, id)
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := psql.Select(userTable.columns...).
		From(userTable.name).
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by username SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error executing get user by username query")
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, fmt.Errorf("error scanning user: %w", err)
	}

	return user, nil
}

// UpdateLastLogin stamps a successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	sql, args, err := psql.Update(userTable.name).
		Set("last_login", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating last login")
		return fmt.Errorf("error updating last login: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
