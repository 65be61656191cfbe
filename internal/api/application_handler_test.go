package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/internhub-api/internal/api"
	"github.com/internhub/internhub-api/internal/mocks"
	"github.com/internhub/internhub-api/internal/service"
)

func newApplicationRouter(applications *mocks.MockApplicationStore) http.Handler {
	handler := api.NewApplicationHandler(service.NewApplicationService(applications, nil))

	r := chi.NewRouter()
	r.Get("/api/applications", handler.List)
	r.Get("/api/applications/user/{userId}", handler.GetByUser)
	r.Post("/api/applications", handler.Add)
	r.Put("/api/applications/{applicationId}", handler.Update)
	r.Delete("/api/applications/{applicationId}", handler.Delete)
	return r
}

func applicationBody(userID, internshipID int64) map[string]interface{} {
	return map[string]interface{}{
		"user_id":            userID,
		"internship_id":      internshipID,
		"university_name":    "State University",
		"degree_program":     "BSc CS",
		"resume":             "resume.pdf",
		"application_status": "Pending",
	}
}

func TestApplicationHandler_Add(t *testing.T) {
	t.Parallel()

	t.Run("success then duplicate", func(t *testing.T) {
		t.Parallel()

		router := newApplicationRouter(mocks.NewMockApplicationStore())

		w := doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 5))
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 5))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already applied for this internship", decodeError(t, w))
	})

	t.Run("missing resume rejected", func(t *testing.T) {
		t.Parallel()

		body := applicationBody(1, 5)
		delete(body, "resume")

		router := newApplicationRouter(mocks.NewMockApplicationStore())
		w := doJSON(t, router, http.MethodPost, "/api/applications", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("same user different internship allowed", func(t *testing.T) {
		t.Parallel()

		router := newApplicationRouter(mocks.NewMockApplicationStore())

		require.Equal(t, http.StatusOK,
			doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 5)).Code)
		assert.Equal(t, http.StatusOK,
			doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 6)).Code)
	})
}

func TestApplicationHandler_GetByUser(t *testing.T) {
	t.Parallel()

	t.Run("empty result maps to not found", func(t *testing.T) {
		t.Parallel()

		router := newApplicationRouter(mocks.NewMockApplicationStore())
		w := doJSON(t, router, http.MethodGet, "/api/applications/user/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Cannot find any internship application", decodeError(t, w))
	})

	t.Run("returns only the user's applications", func(t *testing.T) {
		t.Parallel()

		router := newApplicationRouter(mocks.NewMockApplicationStore())

		require.Equal(t, http.StatusOK,
			doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 5)).Code)
		require.Equal(t, http.StatusOK,
			doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(2, 5)).Code)

		w := doJSON(t, router, http.MethodGet, "/api/applications/user/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, float64(1), resp[0]["user_id"])
	})
}

func TestApplicationHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("preserves owner and internship", func(t *testing.T) {
		t.Parallel()

		applications := mocks.NewMockApplicationStore()
		router := newApplicationRouter(applications)

		require.Equal(t, http.StatusOK,
			doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 5)).Code)

		update := map[string]interface{}{
			"university_name":    "Another University",
			"degree_program":     "MSc CS",
			"resume":             "resume-v2.pdf",
			"application_status": "Accepted",
		}
		w := doJSON(t, router, http.MethodPut, "/api/applications/1", update)
		require.Equal(t, http.StatusOK, w.Code)

		stored := applications.Applications[1]
		assert.Equal(t, int64(1), stored.UserID)
		assert.Equal(t, int64(5), stored.InternshipID)
		assert.Equal(t, "Accepted", stored.Status)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		router := newApplicationRouter(mocks.NewMockApplicationStore())

		update := map[string]interface{}{
			"university_name":    "Another University",
			"degree_program":     "MSc CS",
			"resume":             "resume-v2.pdf",
			"application_status": "Accepted",
		}
		w := doJSON(t, router, http.MethodPut, "/api/applications/99", update)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApplicationHandler_Delete(t *testing.T) {
	t.Parallel()

	router := newApplicationRouter(mocks.NewMockApplicationStore())

	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPost, "/api/applications", applicationBody(1, 5)).Code)

	assert.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodDelete, "/api/applications/1", nil).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, router, http.MethodDelete, "/api/applications/1", nil).Code)
}
