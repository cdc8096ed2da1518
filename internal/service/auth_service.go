package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/service/auth"
	"github.com/skillpath/skillpath-api/internal/store"
)

// UserRepository defines the user persistence operations the auth service needs.
// This is aligned with store.UserStore to keep the service decoupled from the
// concrete database implementation.
type UserRepository interface {
	// Create saves a new user to the store
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenPair bundles the access and refresh tokens issued on login,
// registration, and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService provides user registration, login, and token refresh.
type AuthService interface {
	// Register creates a new user account and issues an initial token pair.
	// Returns ErrEmailTaken if the email is already registered.
	Register(ctx context.Context, name, email, password string) (*domain.User, *TokenPair, error)

	// Login verifies the credentials and issues a token pair.
	// Returns auth.ErrInvalidCredentials when the email/password pair is wrong;
	// callers cannot distinguish an unknown email from a wrong password.
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)

	// Refresh validates a refresh token and issues a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// AuthServiceError wraps errors from the auth service with context.
type AuthServiceError struct {
	// Operation is the operation that failed (e.g., "register", "login")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AuthServiceError.
func (e *AuthServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("auth service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AuthServiceError) Unwrap() error {
	return e.Err
}

// NewAuthServiceError creates a new AuthServiceError.
// It returns known sentinel errors directly without wrapping.
func NewAuthServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, auth.ErrInvalidCredentials) ||
		errors.Is(err, auth.ErrInvalidRefreshToken) ||
		errors.Is(err, auth.ErrExpiredRefreshToken) ||
		errors.Is(err, auth.ErrWrongTokenType) {
		return err
	}

	if errors.Is(err, store.ErrEmailExists) {
		return ErrEmailTaken
	}
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}

	return &AuthServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   UserRepository
	jwtService auth.JWTService
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewAuthService creates a new AuthService.
// It returns an error if any of the required dependencies are nil.
func NewAuthService(
	userRepo UserRepository,
	jwtService auth.JWTService,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) (AuthService, error) {
	if userRepo == nil {
		return nil, &AuthServiceError{
			Operation: "create_service",
			Message:   "userRepo cannot be nil",
		}
	}
	if jwtService == nil {
		return nil, &AuthServiceError{
			Operation: "create_service",
			Message:   "jwtService cannot be nil",
		}
	}
	if verifier == nil {
		return nil, &AuthServiceError{
			Operation: "create_service",
			Message:   "verifier cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		verifier:   verifier,
		logger:     logger.With("component", "auth_service"),
	}, nil
}

// issueTokens generates an access and refresh token pair for the user.
func (s *authServiceImpl) issueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := s.jwtService.GenerateToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Register creates a new user account and issues an initial token pair.
func (s *authServiceImpl) Register(
	ctx context.Context,
	name, email, password string,
) (*domain.User, *TokenPair, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Warn("user registration rejected by validation",
			"error", err)
		return nil, nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			"error", err,
			"user_id", user.ID)
		return nil, nil, NewAuthServiceError("register", "failed to create user", err)
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to issue tokens after registration",
			"error", err,
			"user_id", user.ID)
		return nil, nil, NewAuthServiceError("register", "failed to issue tokens", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID)
	return user, tokens, nil
}

// Login verifies the credentials and issues a token pair.
func (s *authServiceImpl) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Hide whether the email exists.
			s.logger.Debug("login attempt for unknown email")
			return nil, nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login",
			"error", err)
		return nil, nil, NewAuthServiceError("login", "failed to look up user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return nil, nil, auth.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to issue tokens on login",
			"error", err,
			"user_id", user.ID)
		return nil, nil, NewAuthServiceError("login", "failed to issue tokens", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID)
	return user, tokens, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		s.logger.Debug("refresh token rejected",
			"error", err)
		return nil, NewAuthServiceError("refresh", "invalid refresh token", err)
	}

	// The user may have been deleted since the token was issued.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Warn("refresh token for missing user",
			"error", err,
			"user_id", claims.UserID)
		return nil, NewAuthServiceError("refresh", "failed to look up user", err)
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to issue tokens on refresh",
			"error", err,
			"user_id", user.ID)
		return nil, NewAuthServiceError("refresh", "failed to issue tokens", err)
	}

	s.logger.Info("tokens refreshed",
		"user_id", user.ID)
	return tokens, nil
}
