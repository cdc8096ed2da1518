package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/recommend"
	"github.com/skillpath/skillpath-api/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService for testing
type MockAuthService struct {
	RegisterFn func(ctx context.Context, name, email, password string) (*domain.User, *service.TokenPair, error)
	LoginFn    func(ctx context.Context, email, password string) (*domain.User, *service.TokenPair, error)
	RefreshFn  func(ctx context.Context, refreshToken string) (*service.TokenPair, error)
}

func (m *MockAuthService) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, *service.TokenPair, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	return nil, nil, nil
}

func (m *MockAuthService) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, *service.TokenPair, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return nil, nil, nil
}

func (m *MockAuthService) Refresh(
	ctx context.Context,
	refreshToken string,
) (*service.TokenPair, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, refreshToken)
	}
	return nil, nil
}

// MockProfileService is a mock implementation of service.ProfileService for testing
type MockProfileService struct {
	GetProfileFn        func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	ReplaceSkillsFn     func(ctx context.Context, userID uuid.UUID, skills []domain.Skill) error
	ReplaceGoalsFn      func(ctx context.Context, userID uuid.UUID, goals []domain.Goal) error
	UpdatePreferencesFn func(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error
}

func (m *MockProfileService) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.Profile, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockProfileService) ReplaceSkills(
	ctx context.Context,
	userID uuid.UUID,
	skills []domain.Skill,
) error {
	if m.ReplaceSkillsFn != nil {
		return m.ReplaceSkillsFn(ctx, userID, skills)
	}
	return nil
}

func (m *MockProfileService) ReplaceGoals(
	ctx context.Context,
	userID uuid.UUID,
	goals []domain.Goal,
) error {
	if m.ReplaceGoalsFn != nil {
		return m.ReplaceGoalsFn(ctx, userID, goals)
	}
	return nil
}

func (m *MockProfileService) UpdatePreferences(
	ctx context.Context,
	userID uuid.UUID,
	prefs domain.Preferences,
) error {
	if m.UpdatePreferencesFn != nil {
		return m.UpdatePreferencesFn(ctx, userID, prefs)
	}
	return nil
}

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	CreateTaskFn func(ctx context.Context, creatorID uuid.UUID, input service.TaskInput) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, userID, taskID uuid.UUID, input service.TaskInput) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, userID, taskID uuid.UUID) error
}

func (m *MockTaskService) CreateTask(
	ctx context.Context,
	creatorID uuid.UUID,
	input service.TaskInput,
) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, creatorID, input)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	userID, taskID uuid.UUID,
	input service.TaskInput,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, taskID, input)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, taskID)
	}
	return nil
}

// MockRatingService is a mock implementation of service.RatingService for testing
type MockRatingService struct {
	RecordRatingFn     func(ctx context.Context, userID, taskID uuid.UUID, value float64) (*domain.Task, error)
	RecordCompletionFn func(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)
}

func (m *MockRatingService) RecordRating(
	ctx context.Context,
	userID, taskID uuid.UUID,
	value float64,
) (*domain.Task, error) {
	if m.RecordRatingFn != nil {
		return m.RecordRatingFn(ctx, userID, taskID, value)
	}
	return nil, nil
}

func (m *MockRatingService) RecordCompletion(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	if m.RecordCompletionFn != nil {
		return m.RecordCompletionFn(ctx, userID, taskID)
	}
	return nil, nil
}

// MockRecommendationService is a mock implementation of service.RecommendationService for testing
type MockRecommendationService struct {
	RecommendFn func(ctx context.Context, userID uuid.UUID, limit int) ([]recommend.ScoredTask, error)
}

func (m *MockRecommendationService) Recommend(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]recommend.ScoredTask, error) {
	if m.RecommendFn != nil {
		return m.RecommendFn(ctx, userID, limit)
	}
	return nil, nil
}
