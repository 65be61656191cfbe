package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/internhub/internhub-api/internal/domain"
)

// getPathID extracts a positive numeric id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive number", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts a numeric id from the path and writes an error
// response itself when the parameter is missing or malformed.
func handlePathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}
