package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`

	// AccessToken authorizes API requests
	AccessToken string `json:"access_token"`

	// RefreshToken obtains new access tokens after expiry
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SkillInput is one skill in a profile skill replacement.
type SkillInput struct {
	Name            string  `json:"name"             validate:"required,min=1"`
	Category        string  `json:"category"         validate:"required"`
	Level           string  `json:"level"            validate:"required"`
	Confidence      int     `json:"confidence"       validate:"gte=0,lte=100"`
	ExperienceYears float64 `json:"experience_years" validate:"gte=0"`
}

// ReplaceSkillsRequest defines the payload for the skill replacement endpoint.
type ReplaceSkillsRequest struct {
	Skills []SkillInput `json:"skills" validate:"required,dive"`
}

// GoalInput is one goal in a profile goal replacement.
type GoalInput struct {
	Title       string     `json:"title"       validate:"required,min=1"`
	Description string     `json:"description"`
	Category    string     `json:"category"    validate:"required"`
	Priority    string     `json:"priority"    validate:"required"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Completed   bool       `json:"completed"`
}

// ReplaceGoalsRequest defines the payload for the goal replacement endpoint.
type ReplaceGoalsRequest struct {
	Goals []GoalInput `json:"goals" validate:"required,dive"`
}

// PreferencesRequest defines the payload for the preferences update endpoint.
type PreferencesRequest struct {
	Difficulty     string   `json:"difficulty"      validate:"required"`
	Categories     []string `json:"categories"`
	TimeCommitment string   `json:"time_commitment" validate:"required"`
}

// TaskRequest defines the payload for the task create and update endpoints.
type TaskRequest struct {
	Title            string   `json:"title"             validate:"required,min=1,max=200"`
	Description      string   `json:"description"       validate:"required,min=1"`
	Category         string   `json:"category"          validate:"required"`
	Difficulty       string   `json:"difficulty"        validate:"required"`
	EstimatedMinutes int      `json:"estimated_minutes" validate:"required,gt=0"`
	Skills           []string `json:"skills"`
	Tags             []string `json:"tags"`
}

// RatingRequest defines the payload for the task rating endpoint.
type RatingRequest struct {
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
}

// RecommendationItem is one entry in a recommendation response.
type RecommendationItem struct {
	Task  *domain.Task `json:"task"`
	Score int          `json:"score"`
}

// RecommendationsResponse defines the response for the recommendations endpoint.
type RecommendationsResponse struct {
	Results []RecommendationItem `json:"results"`
}
