package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/internhub/internhub-api/internal/api"
	apiMiddleware "github.com/internhub/internhub-api/internal/api/middleware"
	"github.com/internhub/internhub-api/internal/domain"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	internshipHandler := api.NewInternshipHandler(app.internshipService)
	applicationHandler := api.NewApplicationHandler(app.applicationService)
	feedbackHandler := api.NewFeedbackHandler(app.feedbackService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	requireAdmin := apiMiddleware.RequireRole(domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Internship endpoints; mutation is admin-only
			r.Get("/internships", internshipHandler.List)
			r.Get("/internships/{internshipId}", internshipHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/internships", internshipHandler.Add)
				r.Put("/internships/{internshipId}", internshipHandler.Update)
				r.Delete("/internships/{internshipId}", internshipHandler.Delete)
			})

			// Application endpoints
			r.Get("/applications", applicationHandler.List)
			r.Get("/applications/user/{userId}", applicationHandler.GetByUser)
			r.Post("/applications", applicationHandler.Add)
			r.Put("/applications/{applicationId}", applicationHandler.Update)
			r.Delete("/applications/{applicationId}", applicationHandler.Delete)

			// Feedback endpoints
			r.Get("/feedbacks", feedbackHandler.List)
			r.Get("/feedbacks/user/{userId}", feedbackHandler.GetByUser)
			r.Post("/feedbacks", feedbackHandler.Add)
			r.Put("/feedbacks/{feedbackId}", feedbackHandler.Update)
			r.Delete("/feedbacks/{feedbackId}", feedbackHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
