package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internhub/internhub-api/internal/api"
	"github.com/internhub/internhub-api/internal/mocks"
	"github.com/internhub/internhub-api/internal/service"
)

func newFeedbackRouter(feedbacks *mocks.MockFeedbackStore) http.Handler {
	handler := api.NewFeedbackHandler(service.NewFeedbackService(feedbacks, nil))

	r := chi.NewRouter()
	r.Get("/api/feedbacks", handler.List)
	r.Get("/api/feedbacks/user/{userId}", handler.GetByUser)
	r.Post("/api/feedbacks", handler.Add)
	r.Put("/api/feedbacks/{feedbackId}", handler.Update)
	r.Delete("/api/feedbacks/{feedbackId}", handler.Delete)
	return r
}

func feedbackBody(userID int64, text string) map[string]interface{} {
	return map[string]interface{}{
		"user_id":       userID,
		"feedback_text": text,
	}
}

func TestFeedbackHandler_Add(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		router := newFeedbackRouter(mocks.NewMockFeedbackStore())
		w := doJSON(t, router, http.MethodPost, "/api/feedbacks", feedbackBody(1, "Great platform."))

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Great platform.", resp["feedback_text"])
	})

	t.Run("text too long rejected", func(t *testing.T) {
		t.Parallel()

		router := newFeedbackRouter(mocks.NewMockFeedbackStore())
		w := doJSON(t, router, http.MethodPost, "/api/feedbacks",
			feedbackBody(1, strings.Repeat("a", 1013)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFeedbackHandler_GetByUser_EmptyList(t *testing.T) {
	t.Parallel()

	// Unlike applications, a user with no feedback gets 200 and an empty list.
	router := newFeedbackRouter(mocks.NewMockFeedbackStore())
	w := doJSON(t, router, http.MethodGet, "/api/feedbacks/user/42", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestFeedbackHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		feedbacks := mocks.NewMockFeedbackStore()
		router := newFeedbackRouter(feedbacks)

		require.Equal(t, http.StatusOK,
			doJSON(t, router, http.MethodPost, "/api/feedbacks", feedbackBody(1, "Great platform.")).Code)

		// Text-only body: the service carries the submitter and date forward
		// so the store sees a complete record.
		w := doJSON(t, router, http.MethodPut, "/api/feedbacks/1",
			map[string]interface{}{"feedback_text": "Even better now."})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Even better now.", feedbacks.Feedbacks[1].Text)
		assert.Equal(t, int64(1), feedbacks.Feedbacks[1].UserID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		router := newFeedbackRouter(mocks.NewMockFeedbackStore())
		w := doJSON(t, router, http.MethodPut, "/api/feedbacks/99",
			map[string]interface{}{"feedback_text": "hello"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Cannot find any feedback.", decodeError(t, w))
	})
}

func TestFeedbackHandler_Delete(t *testing.T) {
	t.Parallel()

	router := newFeedbackRouter(mocks.NewMockFeedbackStore())

	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPost, "/api/feedbacks", feedbackBody(1, "Great platform.")).Code)

	assert.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodDelete, "/api/feedbacks/1", nil).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, router, http.MethodDelete, "/api/feedbacks/1", nil).Code)
}
