package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/store"
)

// ProfileService manages the recommendation inputs attached to a user:
// skills, goals, and preferences.
type ProfileService interface {
	// GetProfile returns the user's full profile snapshot.
	// Returns ErrUserNotFound if the user does not exist.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	// ReplaceSkills swaps the user's entire skill list for the given one.
	// The swap is atomic; a failed replace leaves the old list intact.
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []domain.Skill) error

	// ReplaceGoals swaps the user's entire goal list for the given one.
	// The swap is atomic; a failed replace leaves the old list intact.
	ReplaceGoals(ctx context.Context, userID uuid.UUID, goals []domain.Goal) error

	// UpdatePreferences overwrites the user's recommendation preferences.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error
}

// ProfileServiceError wraps errors from the profile service with context.
type ProfileServiceError struct {
	// Operation is the operation that failed (e.g., "replace_skills")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ProfileServiceError.
func (e *ProfileServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profile service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("profile service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProfileServiceError) Unwrap() error {
	return e.Err
}

// NewProfileServiceError creates a new ProfileServiceError.
// It returns known sentinel errors directly and maps store-level sentinels
// to service-level ones.
func NewProfileServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUserNotFound) {
		return err
	}
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}

	return &ProfileServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	db           *sql.DB
	profileStore store.ProfileStore
	logger       *slog.Logger
}

// NewProfileService creates a new ProfileService.
// It returns an error if any of the required dependencies are nil.
func NewProfileService(
	db *sql.DB,
	profileStore store.ProfileStore,
	logger *slog.Logger,
) (ProfileService, error) {
	if db == nil {
		return nil, &ProfileServiceError{
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
	if profileStore == nil {
		return nil, &ProfileServiceError{
			Operation: "create_service",
			Message:   "profileStore cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &profileServiceImpl{
		db:           db,
		profileStore: profileStore,
		logger:       logger.With("component", "profile_service"),
	}, nil
}

// GetProfile returns the user's full profile snapshot.
func (s *profileServiceImpl) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Profile, error) {
	profile, err := s.profileStore.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load profile",
			"error", err,
			"user_id", userID)
		return nil, NewProfileServiceError("get_profile", "failed to load profile", err)
	}
	return profile, nil
}

// ReplaceSkills swaps the user's entire skill list inside a transaction.
func (s *profileServiceImpl) ReplaceSkills(
	ctx context.Context,
	userID uuid.UUID,
	skills []domain.Skill,
) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.profileStore.WithTx(tx).ReplaceSkills(ctx, userID, skills)
	})
	if err != nil {
		s.logger.Error("failed to replace skills",
			"error", err,
			"user_id", userID)
		return NewProfileServiceError("replace_skills", "failed to replace skills", err)
	}

	s.logger.Info("skills replaced",
		"user_id", userID,
		"count", len(skills))
	return nil
}

// ReplaceGoals swaps the user's entire goal list inside a transaction.
func (s *profileServiceImpl) ReplaceGoals(
	ctx context.Context,
	userID uuid.UUID,
	goals []domain.Goal,
) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.profileStore.WithTx(tx).ReplaceGoals(ctx, userID, goals)
	})
	if err != nil {
		s.logger.Error("failed to replace goals",
			"error", err,
			"user_id", userID)
		return NewProfileServiceError("replace_goals", "failed to replace goals", err)
	}

	s.logger.Info("goals replaced",
		"user_id", userID,
		"count", len(goals))
	return nil
}

// UpdatePreferences overwrites the user's recommendation preferences.
func (s *profileServiceImpl) UpdatePreferences(
	ctx context.Context,
	userID uuid.UUID,
	prefs domain.Preferences,
) error {
	if err := s.profileStore.UpdatePreferences(ctx, userID, prefs); err != nil {
		s.logger.Error("failed to update preferences",
			"error", err,
			"user_id", userID)
		return NewProfileServiceError("update_preferences", "failed to update preferences", err)
	}

	s.logger.Info("preferences updated",
		"user_id", userID)
	return nil
}
