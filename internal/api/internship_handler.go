package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/internhub/internhub-api/internal/api/shared"
	"github.com/internhub/internhub-api/internal/domain"
	"github.com/internhub/internhub-api/internal/service"
)

// InternshipHandler handles internship posting requests.
type InternshipHandler struct {
	internshipService *service.InternshipService
	validator         *validator.Validate
}

// NewInternshipHandler creates a new InternshipHandler.
func NewInternshipHandler(internshipService *service.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		internshipService: internshipService,
		validator:         validator.New(),
	}
}

// List handles GET /api/internships.
func (h *InternshipHandler) List(w http.ResponseWriter, r *http.Request) {
	internships, err := h.internshipService.GetAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, internships)
}

// Get handles GET /api/internships/{internshipId}.
func (h *InternshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "internshipId")
	if !ok {
		return
	}

	internship, err := h.internshipService.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, internship)
}

// Add handles POST /api/internships.
func (h *InternshipHandler) Add(w http.ResponseWriter, r *http.Request) {
	internship, ok := h.decodeInternship(w, r)
	if !ok {
		return
	}

	if err := h.internshipService.Add(r.Context(), internship); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, internship)
}

// Update handles PUT /api/internships/{internshipId}.
func (h *InternshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "internshipId")
	if !ok {
		return
	}

	internship, ok := h.decodeInternship(w, r)
	if !ok {
		return
	}

	if err := h.internshipService.Update(r.Context(), id, internship); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Internship updated successfully",
	})
}

// Delete handles DELETE /api/internships/{internshipId}.
func (h *InternshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, "internshipId")
	if !ok {
		return
	}

	if err := h.internshipService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Internship deleted successfully",
	})
}

// decodeInternship decodes and validates the shared create/update payload.
// It writes the error response itself when the payload is rejected.
func (h *InternshipHandler) decodeInternship(w http.ResponseWriter, r *http.Request) (*domain.Internship, bool) {
	var req InternshipRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return nil, false
	}

	internship := &domain.Internship{
		Title:               req.Title,
		CompanyName:         req.CompanyName,
		Location:            req.Location,
		DurationInMonths:    req.DurationInMonths,
		Stipend:             req.Stipend,
		Description:         req.Description,
		SkillsRequired:      req.SkillsRequired,
		ApplicationDeadline: req.ApplicationDeadline,
	}

	if err := internship.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}

	return internship, true
}
