package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/platform/logger"
	"github.com/skillpath/skillpath-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed
// by the caller. A bcryptCost of 0 selects the bcrypt default cost.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// It validates the user, hashes the plaintext password, and inserts the row.
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	query := `
		INSERT INTO users (id, name, email, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, err
	}

	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, hashed_password, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &user, nil
}

// Update implements store.UserStore.Update
// If a new plaintext Password is set, it is hashed before the write.
// Returns store.ErrUserNotFound if the user does not exist, or
// store.ErrEmailExists if the new email is already taken.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.Password != "" {
		if err := user.Validate(); err != nil {
			log.Warn("user validation failed during update",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET name = $1, email = $2, hashed_password = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.HashedPassword,
		user.UpdatedAt,
		user.ID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during user update",
				slog.String("user_id", user.ID.String()))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully",
		slog.String("user_id", id.String()))
	return nil
}

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:         tx,
		bcryptCost: s.bcryptCost,
		logger:     s.logger,
	}
}
