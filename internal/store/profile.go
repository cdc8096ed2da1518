package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// ProfileStore defines the interface for persisting the recommendation
// inputs attached to a user: skills, goals, and preferences.
type ProfileStore interface {
	// GetProfile assembles the user's full profile snapshot. A user with
	// no stored skills, goals, or preferences gets empty slices and
	// default preferences rather than an error.
	// Returns ErrUserNotFound if the user does not exist.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	// ReplaceSkills swaps the user's entire skill list for the given one.
	// Returns validation errors from the domain Skill if data is invalid.
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []domain.Skill) error

	// ReplaceGoals swaps the user's entire goal list for the given one.
	// Returns validation errors from the domain Goal if data is invalid.
	ReplaceGoals(ctx context.Context, userID uuid.UUID, goals []domain.Goal) error

	// UpdatePreferences overwrites the user's recommendation preferences.
	// Returns validation errors from the domain Preferences if data is invalid.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error

	// WithTx returns a new ProfileStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) ProfileStore
}
