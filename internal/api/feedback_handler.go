package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/internhub/internhub-api/internal/api/shared"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/service"
)

// FeedbackHandler handles user feedback requests.
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	validator       *validator.Validate
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		validator:       validator.New(),
	}
}

// List handles GET /api/feedbacks.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedbacks, err := h.feedbackService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, feedbacks)
}

// GetByUser handles GET /api/feedbacks/user/{userId}.
// A user with no feedback gets an empty list, not a not-found response.
func (h *FeedbackHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	feedbacks, err := h.feedbackService.GetByUserID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if feedbacks == nil {
		feedbacks = []*domain.Feedback{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, feedbacks)
}

// Add handles POST /api/feedbacks.
func (h *FeedbackHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	feedback := &domain.Feedback{
		UserID: req.UserID,
		Text:   req.Text,
		Date:   time.Now().UTC(),
	}

	if err := feedback.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.feedbackService.Add(r.Context(), feedback); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, feedback)
}

// Update handles PUT /api/feedbacks/{feedbackId}.
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "feedbackId")
	if !ok {
		return
	}

	var req FeedbackUpdateRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	feedback := &domain.Feedback{Text: req.Text}

	if err := h.feedbackService.Update(r.Context(), id, feedback); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Feedback updated successfully",
	})
}

// Delete handles DELETE /api/feedbacks/{feedbackId}.
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "feedbackId")
	if !ok {
		return
	}

	if err := h.feedbackService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Feedback deleted successfully",
	})
}
