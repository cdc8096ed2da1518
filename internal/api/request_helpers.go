package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skillpath/skillpath-api/internal/api/shared"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context, where the authentication middleware placed it.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("missing %s path parameter", paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s path parameter: %w", paramName, err)
	}
	return id, nil
}

// respondWithMappedError translates a service or domain error into a
// sanitized HTTP error response.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
