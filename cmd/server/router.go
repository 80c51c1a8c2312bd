package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rayzor/contacts-api/internal/api"
	apimiddleware "github.com/rayzor/contacts-api/internal/api/middleware"
	"github.com/rayzor/contacts-api/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(metrics.HTTPMetricsMiddleware)

	userHandler := api.NewUserHandler(app.userService)
	contactHandler := api.NewContactHandler(app.contactService)
	addressHandler := api.NewAddressHandler(app.addressService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.userStore)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User endpoints
			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.Update)
			r.Delete("/users/logout", userHandler.Logout)

			// Contact endpoints
			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts", contactHandler.Search)
			r.Get("/contacts/{contactId}", contactHandler.Get)
			r.Put("/contacts/{contactId}", contactHandler.Update)
			r.Delete("/contacts/{contactId}", contactHandler.Remove)

			// Address endpoints
			r.Post("/contacts/{contactId}/addresses", addressHandler.Create)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressHandler.Update)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressHandler.Remove)
		})
	})

	// Operational endpoints
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
