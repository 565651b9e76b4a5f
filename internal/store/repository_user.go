package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and profile updates against the
// "users" table. Event id lists are derived from the roster and events
// tables on every read.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned CreatedAt.
//
// Error handling:
//   - unique_violation on users_username_key → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	err := r.db.QueryRowContext(ctx, createUser,
		user.UserID,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
	).Scan(&user.CreatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation && postgresConstraint(err) == usernameUniqueConstraint {
			log.Warn().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already exists")
			return models.User{}, ErrUsernameTaken
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.RegisteredEvents = []string{}
	user.CreatedEvents = []string{}

	return user, nil
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByUsername retrieves a user by the unique username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail retrieves the earliest user registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns all users except exceptUserID.
func (r *userRepository) ListUsers(ctx context.Context, exceptUserID string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsersExcept, exceptUserID)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateUser applies patch with a single conditional UPDATE and reloads the
// user.
//
// Error handling:
//   - unique_violation on users_username_key → [ErrUsernameTaken].
//   - no row updated and the user exists → [ErrEmailTaken].
//   - no row updated and the user is missing → [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, userID string, patch models.ProfilePatch) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, patch)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to create query")
		return models.User{}, err
	}

	var updatedID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&updatedID)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		var exists bool
		if existsErr := r.db.QueryRowContext(ctx, userExists, userID).Scan(&exists); existsErr != nil {
			log.Err(existsErr).Str("func", "*userRepository.UpdateUser").Msg("failed to check user existence")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, existsErr)
		}
		if !exists {
			return models.User{}, ErrUserNotFound
		}
		log.Warn().Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("email is used by another user")
		return models.User{}, ErrEmailTaken
	case postgresError(err) == pgerrcode.UniqueViolation && postgresConstraint(err) == usernameUniqueConstraint:
		log.Warn().Str("func", "*userRepository.UpdateUser").Str("user_id", userID).Msg("username already exists")
		return models.User{}, ErrUsernameTaken
	default:
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Str("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.FindUserByID(ctx, updatedID)
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user             models.User
		role             string
		registeredEvents string
		createdEvents    string
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
		&registeredEvents,
		&createdEvents,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	user.RegisteredEvents = splitIDs(registeredEvents)
	user.CreatedEvents = splitIDs(createdEvents)

	return user, nil
}
