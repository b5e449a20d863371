package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nutrilog/nutrilog/internal/api/middleware"
	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/api/response"
	"github.com/nutrilog/nutrilog/internal/weight"
)

// WeightHandler handles weight series endpoints.
type WeightHandler struct {
	weightService *weight.Service
}

// NewWeightHandler creates a new WeightHandler.
func NewWeightHandler(weightService *weight.Service) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

// ListWeights handles GET /v1/me/weight - the full series, oldest first.
func (h *WeightHandler) ListWeights(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	result, err := h.weightService.History(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// AddWeight handles POST /v1/me/weight - record a measurement.
func (h *WeightHandler) AddWeight(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	var input models.AddWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	result, err := h.weightService.Add(r.Context(), userID, &input)
	if err != nil {
		var vErr *weight.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(w, r, "validation failed", vErr.Errors)
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.Created(w, r, "/v1/me/weight/"+result.ID, result)
}

// DeleteWeight handles DELETE /v1/me/weight/{entryID}.
func (h *WeightHandler) DeleteWeight(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	entryID := chi.URLParam(r, "entryID")
	if err := h.weightService.Delete(r.Context(), userID, entryID); err != nil {
		if errors.Is(err, weight.ErrEntryNotFound) {
			response.NotFound(w, r, "weight entry")
			return
		}
		response.InternalError(w, r, "internal server error")
		return
	}

	response.NoContent(w, r)
}

// GetWeightStats handles GET /v1/me/weight/stats.
func (h *WeightHandler) GetWeightStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		response.Unauthorized(w, r, "user not authenticated")
		return
	}

	result, err := h.weightService.Stats(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}
