package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/internhub/internhub-api/internal/api/shared"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/service"
)

// ApplicationHandler handles internship application requests.
type ApplicationHandler struct {
	applicationService *service.ApplicationService
	validator          *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		validator:          validator.New(),
	}
}

// List handles GET /api/applications.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	applications, err := h.applicationService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, applications)
}

// GetByUser handles GET /api/applications/user/{userId}.
// An empty result set maps to a not-found response, not an empty list.
func (h *ApplicationHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathID(w, r, "userId")
	if !ok {
		return
	}

	applications, err := h.applicationService.GetByUserID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, applications)
}

// Add handles POST /api/applications.
func (h *ApplicationHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req ApplicationRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	application := &domain.Application{
		UserID:          req.UserID,
		InternshipID:    req.InternshipID,
		UniversityName:  req.UniversityName,
		DegreeProgram:   req.DegreeProgram,
		Resume:          req.Resume,
		LinkedInProfile: req.LinkedInProfile,
		Status:          req.Status,
		ApplicationDate: time.Now().UTC(),
	}

	if err := application.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.applicationService.Add(r.Context(), application); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, application)
}

// Update handles PUT /api/applications/{applicationId}.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "applicationId")
	if !ok {
		return
	}

	var req ApplicationUpdateRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	application := &domain.Application{
		UniversityName:  req.UniversityName,
		DegreeProgram:   req.DegreeProgram,
		Resume:          req.Resume,
		LinkedInProfile: req.LinkedInProfile,
		Status:          req.Status,
	}

	if err := h.applicationService.Update(r.Context(), id, application); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Internship application updated successfully",
	})
}

// Delete handles DELETE /api/applications/{applicationId}.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "applicationId")
	if !ok {
		return
	}

	if err := h.applicationService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Internship application deleted successfully",
	})
}
