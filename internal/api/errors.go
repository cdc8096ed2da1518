package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/rating"
	"github.com/skillpath/skillpath-api/internal/domain/recommend"
	"github.com/skillpath/skillpath-api/internal/service"
	"github.com/skillpath/skillpath-api/internal/service/auth"
	"github.com/skillpath/skillpath-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, rating.ErrInvalidRating),
		errors.Is(err, recommend.ErrInvalidLimit),
		errors.Is(err, store.ErrInvalidEntity),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// domainValidationErrors are the entity validation sentinels surfaced when a
// request carries well-formed JSON with invalid field values. Their messages
// are safe to echo to clients.
var domainValidationErrors = []error{
	domain.ErrUserNameEmpty,
	domain.ErrUserNameTooLong,
	domain.ErrEmailEmpty,
	domain.ErrEmailInvalid,
	domain.ErrPasswordTooShort,
	domain.ErrPasswordTooLong,
	domain.ErrSkillNameEmpty,
	domain.ErrInvalidSkillLevel,
	domain.ErrInvalidConfidence,
	domain.ErrNegativeExperience,
	domain.ErrGoalTitleEmpty,
	domain.ErrGoalDescriptionEmpty,
	domain.ErrInvalidGoalPriority,
	domain.ErrTaskTitleEmpty,
	domain.ErrTaskTitleTooLong,
	domain.ErrTaskDescriptionEmpty,
	domain.ErrTaskDescriptionTooLong,
	domain.ErrInvalidEstimatedMinutes,
	domain.ErrInvalidCategory,
	domain.ErrInvalidDifficulty,
	domain.ErrInvalidDifficultyFilter,
	domain.ErrInvalidTimeCommitment,
}

func isDomainValidationError(err error) bool {
	for _, sentinel := range domainValidationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this task"

	// Not found errors
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, service.ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	// Conflict errors
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	// Bad request errors
	case errors.Is(err, rating.ErrInvalidRating):
		return "Rating must be between 0 and 5"

	case errors.Is(err, recommend.ErrInvalidLimit):
		return "Limit must be greater than zero"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case isDomainValidationError(err):
		return capitalizeFirst(err.Error())

	default:
		return "An unexpected error occurred"
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'RegisterRequest.Email' Error:Field validation
	// for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "gte", "lte":
		return "out of range"
	default:
		return "validation failed"
	}
}
