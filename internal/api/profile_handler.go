package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/skillpath/skillpath-api/internal/api/shared"
	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/service"
)

// ProfileHandler handles profile-related API requests: the skills, goals,
// and preferences that feed the recommendation engine.
type ProfileHandler struct {
	profileService service.ProfileService
	validator      *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler with the given dependencies.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		validator:      validator.New(),
	}
}

// GetProfile handles GET /profile requests.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// ReplaceSkills handles PUT /profile/skills requests. The submitted list
// replaces the stored one entirely.
func (h *ProfileHandler) ReplaceSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req ReplaceSkillsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	skills := make([]domain.Skill, 0, len(req.Skills))
	for _, input := range req.Skills {
		skill, err := domain.NewSkill(
			userID,
			input.Name,
			domain.Category(input.Category),
			domain.SkillLevel(input.Level),
			input.Confidence,
			input.ExperienceYears,
		)
		if err != nil {
			respondWithMappedError(w, r, err)
			return
		}
		skills = append(skills, *skill)
	}

	if err := h.profileService.ReplaceSkills(r.Context(), userID, skills); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]domain.Skill{"skills": skills})
}

// ReplaceGoals handles PUT /profile/goals requests. The submitted list
// replaces the stored one entirely.
func (h *ProfileHandler) ReplaceGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req ReplaceGoalsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	goals := make([]domain.Goal, 0, len(req.Goals))
	for _, input := range req.Goals {
		goal, err := domain.NewGoal(
			userID,
			input.Title,
			input.Description,
			domain.Category(input.Category),
			domain.GoalPriority(input.Priority),
			input.TargetDate,
		)
		if err != nil {
			respondWithMappedError(w, r, err)
			return
		}
		goal.Completed = input.Completed
		goals = append(goals, *goal)
	}

	if err := h.profileService.ReplaceGoals(r.Context(), userID, goals); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]domain.Goal{"goals": goals})
}

// UpdatePreferences handles PUT /profile/preferences requests.
func (h *ProfileHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req PreferencesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	categories := make([]domain.Category, 0, len(req.Categories))
	for _, c := range req.Categories {
		categories = append(categories, domain.Category(c))
	}

	prefs := domain.Preferences{
		Difficulty:     domain.DifficultyFilter(req.Difficulty),
		Categories:     categories,
		TimeCommitment: domain.TimeCommitment(req.TimeCommitment),
	}
	if err := prefs.Validate(); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.profileService.UpdatePreferences(r.Context(), userID, prefs); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, prefs)
}
