package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/skillpath/skillpath-api/internal/api/shared"
	"github.com/skillpath/skillpath-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

// Register handles POST /auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, tokens, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, tokens, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// RefreshToken handles POST /auth/refresh requests.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		// A token for a since-deleted user reads as an invalid token, not
		// as a user lookup failure.
		if errors.Is(err, service.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}
