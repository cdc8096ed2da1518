package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType indicates a token of one type was presented where the
	// other type is required (e.g., a refresh token sent as an access token)
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidRefreshToken indicates the refresh token format is invalid or
	// the signature doesn't match
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken indicates the refresh token has expired
	ErrExpiredRefreshToken = errors.New("refresh token has expired")

	// ErrInvalidCredentials indicates an email/password pair that does not
	// match any stored user
	ErrInvalidCredentials = errors.New("invalid credentials")
)
