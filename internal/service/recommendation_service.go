package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/recommend"
	"github.com/skillpath/skillpath-api/internal/store"
)

// CatalogReader defines the catalog access the recommendation service needs.
type CatalogReader interface {
	// ListCandidates retrieves all active, public tasks in catalog order
	ListCandidates(ctx context.Context) ([]*domain.Task, error)
}

// ProfileReader defines the profile access the recommendation service needs.
type ProfileReader interface {
	// GetProfile assembles the user's full profile snapshot
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

// RecommendationService produces personalized task rankings.
type RecommendationService interface {
	// Recommend scores every eligible catalog task against the user's
	// profile and returns the top results. Scores are always computed
	// fresh from the current profile; the stored score cache is never
	// consulted.
	// Returns recommend.ErrInvalidLimit for non-positive limits and
	// ErrUserNotFound if the user does not exist.
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]recommend.ScoredTask, error)
}

// RecommendationServiceError wraps errors from the recommendation service with context.
type RecommendationServiceError struct {
	// Operation is the operation that failed (e.g., "recommend")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for RecommendationServiceError.
func (e *RecommendationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recommendation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("recommendation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RecommendationServiceError) Unwrap() error {
	return e.Err
}

// NewRecommendationServiceError creates a new RecommendationServiceError.
// It returns known sentinel errors directly and maps store-level sentinels
// to service-level ones.
func NewRecommendationServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrUserNotFound) || errors.Is(err, recommend.ErrInvalidLimit) {
		return err
	}
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}

	return &RecommendationServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// recommendationServiceImpl implements the RecommendationService interface
type recommendationServiceImpl struct {
	catalog    CatalogReader
	profiles   ProfileReader
	recommends recommend.Service
	logger     *slog.Logger
}

// NewRecommendationService creates a new RecommendationService.
// It returns an error if any of the required dependencies are nil.
func NewRecommendationService(
	catalog CatalogReader,
	profiles ProfileReader,
	recommender recommend.Service,
	logger *slog.Logger,
) (RecommendationService, error) {
	if catalog == nil {
		return nil, &RecommendationServiceError{
			Operation: "create_service",
			Message:   "catalog cannot be nil",
		}
	}
	if profiles == nil {
		return nil, &RecommendationServiceError{
			Operation: "create_service",
			Message:   "profiles cannot be nil",
		}
	}
	if recommender == nil {
		return nil, &RecommendationServiceError{
			Operation: "create_service",
			Message:   "recommender cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &recommendationServiceImpl{
		catalog:    catalog,
		profiles:   profiles,
		recommends: recommender,
		logger:     logger.With("component", "recommendation_service"),
	}, nil
}

// Recommend scores the catalog against the user's profile and returns the
// top results.
func (s *recommendationServiceImpl) Recommend(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]recommend.ScoredTask, error) {
	if limit <= 0 {
		return nil, recommend.ErrInvalidLimit
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load profile for recommendations",
			"error", err,
			"user_id", userID)
		return nil, NewRecommendationServiceError("recommend", "failed to load profile", err)
	}

	catalog, err := s.catalog.ListCandidates(ctx)
	if err != nil {
		s.logger.Error("failed to load catalog for recommendations",
			"error", err,
			"user_id", userID)
		return nil, NewRecommendationServiceError("recommend", "failed to load catalog", err)
	}

	results, err := s.recommends.Recommend(catalog, profile, limit)
	if err != nil {
		s.logger.Error("failed to rank catalog",
			"error", err,
			"user_id", userID)
		return nil, NewRecommendationServiceError("recommend", "failed to rank catalog", err)
	}

	s.logger.Debug("recommendations computed",
		"user_id", userID,
		"candidates", len(catalog),
		"results", len(results))
	return results, nil
}
