package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/service"
)

func TestProfileHandlerGetProfile(t *testing.T) {
	t.Parallel()

	t.Run("returns profile", func(t *testing.T) {
		t.Parallel()

		profileService := &MockProfileService{
			GetProfileFn: func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
				assert.Equal(t, testUserID, userID)
				skill, err := domain.NewSkill(userID, "Go", domain.CategoryProgramming, domain.SkillLevelAdvanced, 80, 3)
				require.NoError(t, err)
				return &domain.Profile{
					UserID: userID,
					Skills: []domain.Skill{*skill},
				}, nil
			},
		}
		handler := NewProfileHandler(profileService)

		req := authedRequest(http.MethodGet, "/profile", nil, testUserID, "")
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp domain.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, testUserID, resp.UserID)
		require.Len(t, resp.Skills, 1)
		assert.Equal(t, "Go", resp.Skills[0].Name)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()

		handler := NewProfileHandler(&MockProfileService{})

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("maps unknown user to 404", func(t *testing.T) {
		t.Parallel()

		profileService := &MockProfileService{
			GetProfileFn: func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
				return nil, service.ErrUserNotFound
			},
		}
		handler := NewProfileHandler(profileService)

		req := authedRequest(http.MethodGet, "/profile", nil, testUserID, "")
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProfileHandlerReplaceSkills(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectStored   int
	}{
		{
			name: "replaces skills",
			requestBody: map[string]interface{}{
				"skills": []map[string]interface{}{
					{
						"name":             "Go",
						"category":         "Programming",
						"level":            "advanced",
						"confidence":       80,
						"experience_years": 3.5,
					},
					{
						"name":       "SQL",
						"category":   "Data Science",
						"level":      "intermediate",
						"confidence": 60,
					},
				},
			},
			expectedStatus: http.StatusOK,
			expectStored:   2,
		},
		{
			name: "clears skills with empty list",
			requestBody: map[string]interface{}{
				"skills": []map[string]interface{}{},
			},
			expectedStatus: http.StatusOK,
			expectStored:   0,
		},
		{
			name: "rejects confidence above range",
			requestBody: map[string]interface{}{
				"skills": []map[string]interface{}{
					{
						"name":       "Go",
						"category":   "Programming",
						"level":      "advanced",
						"confidence": 150,
					},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectStored:   -1,
		},
		{
			name: "rejects unknown skill level",
			requestBody: map[string]interface{}{
				"skills": []map[string]interface{}{
					{
						"name":       "Go",
						"category":   "Programming",
						"level":      "grandmaster",
						"confidence": 80,
					},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectStored:   -1,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stored := -1
			profileService := &MockProfileService{
				ReplaceSkillsFn: func(ctx context.Context, userID uuid.UUID, skills []domain.Skill) error {
					stored = len(skills)
					return nil
				},
			}
			handler := NewProfileHandler(profileService)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := authedRequest(http.MethodPut, "/profile/skills", body, testUserID, "")
			rec := httptest.NewRecorder()
			handler.ReplaceSkills(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectStored, stored)
		})
	}
}

func TestProfileHandlerReplaceGoals(t *testing.T) {
	t.Parallel()

	t.Run("replaces goals and keeps completion flag", func(t *testing.T) {
		t.Parallel()

		var stored []domain.Goal
		profileService := &MockProfileService{
			ReplaceGoalsFn: func(ctx context.Context, userID uuid.UUID, goals []domain.Goal) error {
				stored = goals
				return nil
			},
		}
		handler := NewProfileHandler(profileService)

		body, err := json.Marshal(map[string]interface{}{
			"goals": []map[string]interface{}{
				{
					"title":       "Ship a production Go service",
					"description": "End to end, including deployment.",
					"category":    "Programming",
					"priority":    "high",
					"completed":   true,
				},
			},
		})
		require.NoError(t, err)

		req := authedRequest(http.MethodPut, "/profile/goals", body, testUserID, "")
		rec := httptest.NewRecorder()
		handler.ReplaceGoals(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, stored, 1)
		assert.Equal(t, "Ship a production Go service", stored[0].Title)
		assert.True(t, stored[0].Completed)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		t.Parallel()

		called := false
		profileService := &MockProfileService{
			ReplaceGoalsFn: func(ctx context.Context, userID uuid.UUID, goals []domain.Goal) error {
				called = true
				return nil
			},
		}
		handler := NewProfileHandler(profileService)

		body, err := json.Marshal(map[string]interface{}{
			"goals": []map[string]interface{}{
				{
					"title":    "Ship a production Go service",
					"category": "Programming",
					"priority": "urgent",
				},
			},
		})
		require.NoError(t, err)

		req := authedRequest(http.MethodPut, "/profile/goals", body, testUserID, "")
		rec := httptest.NewRecorder()
		handler.ReplaceGoals(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})
}

func TestProfileHandlerUpdatePreferences(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		checkStored    func(t *testing.T, prefs *domain.Preferences)
	}{
		{
			name: "updates preferences",
			requestBody: map[string]interface{}{
				"difficulty":      "medium",
				"categories":      []string{"Programming", "Design"},
				"time_commitment": "short",
			},
			expectedStatus: http.StatusOK,
			checkStored: func(t *testing.T, prefs *domain.Preferences) {
				require.NotNil(t, prefs)
				assert.Equal(t, domain.DifficultyFilterMedium, prefs.Difficulty)
				assert.Equal(t, domain.TimeCommitmentShort, prefs.TimeCommitment)
				assert.Len(t, prefs.Categories, 2)
			},
		},
		{
			name: "accepts the all difficulty filter",
			requestBody: map[string]interface{}{
				"difficulty":      "all",
				"time_commitment": "all",
			},
			expectedStatus: http.StatusOK,
			checkStored: func(t *testing.T, prefs *domain.Preferences) {
				require.NotNil(t, prefs)
				assert.Equal(t, domain.DifficultyFilterAll, prefs.Difficulty)
			},
		},
		{
			name: "rejects unknown difficulty filter",
			requestBody: map[string]interface{}{
				"difficulty":      "brutal",
				"time_commitment": "short",
			},
			expectedStatus: http.StatusBadRequest,
			checkStored: func(t *testing.T, prefs *domain.Preferences) {
				assert.Nil(t, prefs)
			},
		},
		{
			name: "rejects unknown category",
			requestBody: map[string]interface{}{
				"difficulty":      "all",
				"categories":      []string{"Astrology"},
				"time_commitment": "all",
			},
			expectedStatus: http.StatusBadRequest,
			checkStored: func(t *testing.T, prefs *domain.Preferences) {
				assert.Nil(t, prefs)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stored *domain.Preferences
			profileService := &MockProfileService{
				UpdatePreferencesFn: func(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error {
					stored = &prefs
					return nil
				},
			}
			handler := NewProfileHandler(profileService)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := authedRequest(http.MethodPut, "/profile/preferences", body, testUserID, "")
			rec := httptest.NewRecorder()
			handler.UpdatePreferences(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			tc.checkStored(t, stored)
		})
	}
}
