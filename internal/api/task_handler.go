package api

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/skillpath/skillpath-api/internal/api/shared"
	"github.com/skillpath/skillpath-api/internal/domain"
	"github.com/skillpath/skillpath-api/internal/domain/recommend"
	"github.com/skillpath/skillpath-api/internal/service"
)

// TaskHandler handles catalog task API requests: authoring, engagement,
// and personalized recommendations.
type TaskHandler struct {
	taskService           service.TaskService
	ratingService         service.RatingService
	recommendationService service.RecommendationService
	validator             *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(
	taskService service.TaskService,
	ratingService service.RatingService,
	recommendationService service.RecommendationService,
) *TaskHandler {
	return &TaskHandler{
		taskService:           taskService,
		ratingService:         ratingService,
		recommendationService: recommendationService,
		validator:             validator.New(),
	}
}

// taskInputFromRequest converts the request DTO into a service input.
func taskInputFromRequest(req TaskRequest) service.TaskInput {
	return service.TaskInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         domain.Category(req.Category),
		Difficulty:       domain.Difficulty(req.Difficulty),
		EstimatedMinutes: req.EstimatedMinutes,
		Skills:           req.Skills,
		Tags:             req.Tags,
	}
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, taskInputFromRequest(req))
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/{id} requests.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), userID, taskID, taskInputFromRequest(req))
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordCompletion handles POST /tasks/{id}/completion requests.
// Completions are counted, not deduplicated; repeating a task counts again.
func (h *TaskHandler) RecordCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.ratingService.RecordCompletion(r.Context(), userID, taskID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// RecordRating handles POST /tasks/{id}/rating requests.
func (h *TaskHandler) RecordRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req RatingRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.ratingService.RecordRating(r.Context(), userID, taskID, req.Rating)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// GetRecommendations handles GET /recommendations requests. The optional
// limit query parameter caps the result count and defaults to 20.
func (h *TaskHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit := recommend.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	results, err := h.recommendationService.Recommend(r.Context(), userID, limit)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	items := make([]RecommendationItem, 0, len(results))
	for _, scored := range results {
		items = append(items, RecommendationItem{
			Task:  scored.Task,
			Score: scored.Score,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RecommendationsResponse{Results: items})
}
