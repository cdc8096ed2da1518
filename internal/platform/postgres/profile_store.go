package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/platform/logger"
	"github.com/skillpath/skillpath-api/internal/store"
)

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
//
// The Replace methods issue a delete followed by inserts; callers that need
// the swap to be atomic run them inside store.RunInTransaction via WithTx.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface. If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// GetProfile implements store.ProfileStore.GetProfile
// Returns store.ErrUserNotFound if the user does not exist. Missing skills,
// goals, or preference rows are not errors; the profile just comes back with
// empty slices and default preferences.
func (s *PostgresProfileStore) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check user existence",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	if !exists {
		log.Debug("user not found for profile", slog.String("user_id", userID.String()))
		return nil, store.ErrUserNotFound
	}

	skills, err := s.listSkills(ctx, userID)
	if err != nil {
		log.Error("failed to load profile skills",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	goals, err := s.listGoals(ctx, userID)
	if err != nil {
		log.Error("failed to load profile goals",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	prefs, err := s.getPreferences(ctx, userID)
	if err != nil {
		log.Error("failed to load profile preferences",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	return &domain.Profile{
		Skills:      skills,
		Goals:       goals,
		Preferences: prefs,
	}, nil
}

func (s *PostgresProfileStore) listSkills(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Skill, error) {
	query := `
		SELECT id, user_id, name, category, level, confidence, experience_years,
			created_at, updated_at
		FROM skills
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	skills := []domain.Skill{}
	for rows.Next() {
		var skill domain.Skill
		err := rows.Scan(
			&skill.ID,
			&skill.UserID,
			&skill.Name,
			&skill.Category,
			&skill.Level,
			&skill.Confidence,
			&skill.ExperienceYears,
			&skill.CreatedAt,
			&skill.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func (s *PostgresProfileStore) listGoals(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Goal, error) {
	query := `
		SELECT id, user_id, title, description, category, priority, target_date,
			completed, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	goals := []domain.Goal{}
	for rows.Next() {
		var goal domain.Goal
		var targetDate sql.NullTime
		err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Title,
			&goal.Description,
			&goal.Category,
			&goal.Priority,
			&targetDate,
			&goal.Completed,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if targetDate.Valid {
			t := targetDate.Time
			goal.TargetDate = &t
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *PostgresProfileStore) getPreferences(
	ctx context.Context,
	userID uuid.UUID,
) (domain.Preferences, error) {
	query := `
		SELECT difficulty, categories, time_commitment
		FROM user_preferences
		WHERE user_id = $1
	`

	var prefs domain.Preferences
	var categoriesJSON []byte
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.Difficulty,
		&categoriesJSON,
		&prefs.TimeCommitment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultPreferences(), nil
		}
		return domain.Preferences{}, err
	}

	if err := json.Unmarshal(categoriesJSON, &prefs.Categories); err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to decode preference categories: %w", err)
	}

	return prefs, nil
}

// ReplaceSkills implements store.ProfileStore.ReplaceSkills
// Returns validation errors from the domain Skill if any entry is invalid.
func (s *PostgresProfileStore) ReplaceSkills(
	ctx context.Context,
	userID uuid.UUID,
	skills []domain.Skill,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range skills {
		if err := skills[i].Validate(); err != nil {
			log.Warn("skill validation failed during replace",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM skills WHERE user_id = $1`, userID); err != nil {
		log.Error("failed to clear existing skills",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	query := `
		INSERT INTO skills (id, user_id, name, category, level, confidence,
			experience_years, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i := range skills {
		skill := &skills[i]
		_, err := s.db.ExecContext(
			ctx,
			query,
			skill.ID,
			skill.UserID,
			skill.Name,
			skill.Category,
			skill.Level,
			skill.Confidence,
			skill.ExperienceYears,
			skill.CreatedAt,
			skill.UpdatedAt,
		)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: skill owner not found", store.ErrInvalidEntity)
			}
			log.Error("failed to insert skill",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return err
		}
	}

	log.Info("skills replaced",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(skills)))
	return nil
}

// ReplaceGoals implements store.ProfileStore.ReplaceGoals
// Returns validation errors from the domain Goal if any entry is invalid.
func (s *PostgresProfileStore) ReplaceGoals(
	ctx context.Context,
	userID uuid.UUID,
	goals []domain.Goal,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i := range goals {
		if err := goals[i].Validate(); err != nil {
			log.Warn("goal validation failed during replace",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE user_id = $1`, userID); err != nil {
		log.Error("failed to clear existing goals",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	query := `
		INSERT INTO goals (id, user_id, title, description, category, priority,
			target_date, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for i := range goals {
		goal := &goals[i]
		_, err := s.db.ExecContext(
			ctx,
			query,
			goal.ID,
			goal.UserID,
			goal.Title,
			goal.Description,
			goal.Category,
			goal.Priority,
			goal.TargetDate,
			goal.Completed,
			goal.CreatedAt,
			goal.UpdatedAt,
		)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: goal owner not found", store.ErrInvalidEntity)
			}
			log.Error("failed to insert goal",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return err
		}
	}

	log.Info("goals replaced",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(goals)))
	return nil
}

// UpdatePreferences implements store.ProfileStore.UpdatePreferences
// Returns validation errors from the domain Preferences if data is invalid.
func (s *PostgresProfileStore) UpdatePreferences(
	ctx context.Context,
	userID uuid.UUID,
	prefs domain.Preferences,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prefs.Validate(); err != nil {
		log.Warn("preferences validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	categories := prefs.Categories
	if categories == nil {
		categories = []domain.Category{}
	}
	categoriesJSON, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode preference categories: %w", err)
	}

	query := `
		INSERT INTO user_preferences (user_id, difficulty, categories, time_commitment, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET difficulty = $2, categories = $3, time_commitment = $4, updated_at = NOW()
	`

	_, err = s.db.ExecContext(
		ctx,
		query,
		userID,
		prefs.Difficulty,
		categoriesJSON,
		prefs.TimeCommitment,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: preference owner not found", store.ErrInvalidEntity)
		}
		log.Error("failed to update preferences",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("preferences updated",
		slog.String("user_id", userID.String()))
	return nil
}

// WithTx implements store.ProfileStore.WithTx
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{
		db:     tx,
		logger: s.logger,
	}
}
