// Package service provides application-level services for managing users,
// profiles, tasks, and recommendations.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// This is typically returned when a user attempts to modify a resource they don't own.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrUserNotFound indicates that the user does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound indicates that the task does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmailTaken indicates that an account with the given email already exists.
	// API layer should map this to HTTP 409 Conflict.
	ErrEmailTaken = errors.New("email is already registered")
)
