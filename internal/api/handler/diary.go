package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nutrilog/nutrilog/internal/api/middleware"
	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/api/response"
	"github.com/nutrilog/nutrilog/internal/diary"
	"github.com/nutrilog/nutrilog/internal/profile"
	"github.com/nutrilog/nutrilog/internal/reference"
)

// DiaryHandler handles diary endpoints.
type DiaryHandler struct {
	diaryService *diary.Service
	metrics      *middleware.DiaryMetrics
}

// NewDiaryHandler creates a new DiaryHandler. metrics may be nil.
func NewDiaryHandler(diaryService *diary.Service, metrics *middleware.DiaryMetrics) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService, metrics: metrics}
}

// GetDay handles GET /v1/me/diary/{date} - the daily dashboard projection.
func (h *DiaryHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	result, err := h.diaryService.DailyDiary(r.Context(), userID, date)
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// GetRange handles GET /v1/me/diary?from=...&to=... - per-day projections for
// an inclusive date range.
func (h *DiaryHandler) GetRange(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	from, ok := parseDateQuery(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(w, r, "to")
	if !ok {
		return
	}

	result, err := h.diaryService.RangeDiary(r.Context(), userID, from, to)
	if err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// GetStats handles GET /v1/me/diary/stats?from=...&to=...
func (h *DiaryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	from, ok := parseDateQuery(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(w, r, "to")
	if !ok {
		return
	}

	result, err := h.diaryService.PeriodStats(r.Context(), userID, from, to)
	if err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// AddFood handles POST /v1/me/diary/{date}/meals/{mealType}/items.
func (h *DiaryHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}
	mealType, ok := parseMealTypeParam(w, r)
	if !ok {
		return
	}

	var input models.AddFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.diaryService.AddFood(r.Context(), userID, date, mealType, &input)
	if err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	h.metrics.RecordFoodLogged(r.Context(), string(mealType))
	response.Created(w, r, "", result)
}

// RemoveFood handles DELETE /v1/me/diary/{date}/meals/{mealType}/items/{itemID}.
func (h *DiaryHandler) RemoveFood(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}
	mealType, ok := parseMealTypeParam(w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if err := h.diaryService.RemoveFood(r.Context(), userID, date, mealType, itemID); err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	response.NoContent(w, r)
}

// AddActivity handles POST /v1/me/diary/{date}/activities.
func (h *DiaryHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	var input models.AddActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.diaryService.AddActivity(r.Context(), userID, date, &input)
	if err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	h.metrics.RecordActivityLogged(r.Context())
	response.Created(w, r, "", result)
}

// RemoveActivity handles DELETE /v1/me/diary/{date}/activities/{activityID}.
func (h *DiaryHandler) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	activityID := chi.URLParam(r, "activityID")
	if err := h.diaryService.RemoveActivity(r.Context(), userID, date, activityID); err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	response.NoContent(w, r)
}

// CopyMeals handles POST /v1/me/diary/{date}/copy - duplicate the day's
// meals onto another date.
func (h *DiaryHandler) CopyMeals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	date, ok := parseDateParam(w, r, "date")
	if !ok {
		return
	}

	var input models.CopyMealsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.diaryService.CopyMeals(r.Context(), userID, date, &input)
	if err != nil {
		h.writeDiaryError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// writeDiaryError maps diary service errors to problem responses.
func (h *DiaryHandler) writeDiaryError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *diary.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.BadRequest(w, r, "validation failed", vErr.Errors)
	case errors.Is(err, reference.ErrFoodNotFound):
		response.NotFound(w, r, "food")
	case errors.Is(err, reference.ErrActivityNotFound):
		response.NotFound(w, r, "activity")
	case errors.Is(err, profile.ErrProfileNotFound):
		response.NotFound(w, r, "profile")
	case errors.Is(err, diary.ErrFoodItemNotFound):
		response.NotFound(w, r, "food item")
	case errors.Is(err, diary.ErrActivityNotFound):
		response.NotFound(w, r, "activity")
	case errors.Is(err, diary.ErrConflict):
		response.Conflict(w, r, "the diary entry was modified concurrently")
	default:
		response.InternalError(w, r, "internal server error")
	}
}

// parseDateParam parses a YYYY-MM-DD URL parameter, writing a 400 on failure.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (models.Date, bool) {
	date, err := models.ParseDate(chi.URLParam(r, name))
	if err != nil {
		response.BadRequest(w, r, "invalid date, expected YYYY-MM-DD", []models.FieldError{
			{Field: name, Message: "must be a valid YYYY-MM-DD date"},
		})
		return models.Date{}, false
	}
	return date, true
}

// parseDateQuery parses a YYYY-MM-DD query parameter, writing a 400 on failure.
func parseDateQuery(w http.ResponseWriter, r *http.Request, name string) (models.Date, bool) {
	date, err := models.ParseDate(r.URL.Query().Get(name))
	if err != nil {
		response.BadRequest(w, r, "invalid date, expected YYYY-MM-DD", []models.FieldError{
			{Field: name, Message: "must be a valid YYYY-MM-DD date"},
		})
		return models.Date{}, false
	}
	return date, true
}

// parseMealTypeParam parses the {mealType} URL parameter against the six
// known slots, writing a 400 on failure.
func parseMealTypeParam(w http.ResponseWriter, r *http.Request) (diary.MealType, bool) {
	mealType, ok := diary.ParseMealType(chi.URLParam(r, "mealType"))
	if !ok {
		response.BadRequest(w, r, "unknown meal type", []models.FieldError{
			{Field: "mealType", Message: "must be one of breakfast, morning_snack, lunch, afternoon_snack, dinner, other"},
		})
		return "", false
	}
	return mealType, true
}
