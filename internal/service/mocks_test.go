package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/events"
	"github.com/skillpath/skillpath-api/internal/service/auth"
	"github.com/skillpath/skillpath-api/internal/store"
)

// mockUserRepository implements UserRepository with function fields.
type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

// mockJWTService implements auth.JWTService with function fields.
type mockJWTService struct {
	GenerateTokenFunc        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFunc        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFunc func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFunc func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(ctx, userID)
	}
	return "access-token", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	return &auth.Claims{}, nil
}

func (m *mockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(ctx, userID)
	}
	return "refresh-token", nil
}

func (m *mockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(ctx, tokenString)
	}
	return &auth.Claims{}, nil
}

// mockPasswordVerifier implements auth.PasswordVerifier with a function field.
type mockPasswordVerifier struct {
	CompareFunc func(hashedPassword, password string) error
}

func (m *mockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hashedPassword, password)
	}
	return nil
}

// mockTaskRepository implements TaskRepository with function fields.
type mockTaskRepository struct {
	CreateFunc  func(ctx context.Context, task *domain.Task) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFunc  func(ctx context.Context, task *domain.Task) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return m.CreateFunc(ctx, task)
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	return m.UpdateFunc(ctx, task)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

// mockEngagementRepository implements EngagementRepository with function fields.
type mockEngagementRepository struct {
	ApplyRatingFunc         func(ctx context.Context, id uuid.UUID, value float64, now time.Time) (*domain.Task, error)
	IncrementCompletionFunc func(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Task, error)
}

func (m *mockEngagementRepository) ApplyRating(
	ctx context.Context,
	id uuid.UUID,
	value float64,
	now time.Time,
) (*domain.Task, error) {
	return m.ApplyRatingFunc(ctx, id, value, now)
}

func (m *mockEngagementRepository) IncrementCompletion(
	ctx context.Context,
	id uuid.UUID,
	now time.Time,
) (*domain.Task, error) {
	return m.IncrementCompletionFunc(ctx, id, now)
}

// mockEventEmitter implements events.EventEmitter and records emitted events.
type mockEventEmitter struct {
	Events    []*events.Event
	EmitError error
}

func (m *mockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	m.Events = append(m.Events, event)
	return m.EmitError
}

// mockCatalogReader implements CatalogReader with a function field.
type mockCatalogReader struct {
	ListCandidatesFunc func(ctx context.Context) ([]*domain.Task, error)
}

func (m *mockCatalogReader) ListCandidates(ctx context.Context) ([]*domain.Task, error) {
	return m.ListCandidatesFunc(ctx)
}

// mockProfileReader implements ProfileReader with a function field.
type mockProfileReader struct {
	GetProfileFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

func (m *mockProfileReader) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return m.GetProfileFunc(ctx, userID)
}

// mockProfileStore implements store.ProfileStore with function fields.
type mockProfileStore struct {
	GetProfileFunc        func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	ReplaceSkillsFunc     func(ctx context.Context, userID uuid.UUID, skills []domain.Skill) error
	ReplaceGoalsFunc      func(ctx context.Context, userID uuid.UUID, goals []domain.Goal) error
	UpdatePreferencesFunc func(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error
}

func (m *mockProfileStore) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return m.GetProfileFunc(ctx, userID)
}

func (m *mockProfileStore) ReplaceSkills(
	ctx context.Context,
	userID uuid.UUID,
	skills []domain.Skill,
) error {
	return m.ReplaceSkillsFunc(ctx, userID, skills)
}

func (m *mockProfileStore) ReplaceGoals(
	ctx context.Context,
	userID uuid.UUID,
	goals []domain.Goal,
) error {
	return m.ReplaceGoalsFunc(ctx, userID, goals)
}

func (m *mockProfileStore) UpdatePreferences(
	ctx context.Context,
	userID uuid.UUID,
	prefs domain.Preferences,
) error {
	return m.UpdatePreferencesFunc(ctx, userID, prefs)
}

func (m *mockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
