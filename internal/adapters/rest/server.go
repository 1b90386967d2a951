package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "aqar-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Catalog *CatalogHandler
	Leads   *LeadsHandler
	Auth    *AuthHandler
	Admin   *AdminHandler
	Upload  *UploadHandler
}

// Server is the REST API server for the site.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer wires the routes. Everything under /api/v1/admin except login
// sits behind the session middleware; /uploads serves the image variants.
func NewServer(port string, handlers *Handlers, sessions core_port.SessionStorePort,
	uploadsDir string, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Public site.
		r.Get("/properties", handlers.Catalog.GetProperties)
		r.Get("/properties/featured", handlers.Catalog.GetFeaturedProperties)
		r.Get("/properties/{propertyID}", handlers.Catalog.GetPropertyByID)
		r.Post("/properties/search", handlers.Catalog.SearchProperties)

		r.Get("/governorates", handlers.Catalog.GetGovernorates)
		r.Get("/governorates/{governorateID}/directorates", handlers.Catalog.GetDirectoratesByGovernorate)
		r.Get("/property-types", handlers.Catalog.GetPropertyTypes)
		r.Get("/settings", handlers.Catalog.GetSettings)

		// Lead-capture forms.
		r.Post("/contacts", handlers.Leads.CreateContact)
		r.Post("/newsletter", handlers.Leads.SubscribeNewsletter)
		r.Post("/entrustments", handlers.Leads.CreateEntrustment)
		r.Post("/property-requests", handlers.Leads.CreatePropertyRequest)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(SessionAuthMiddleware(sessions))

				r.Post("/logout", handlers.Auth.Logout)
				r.Get("/me", handlers.Auth.Me)

				r.Get("/properties", handlers.Admin.GetAllProperties)
				r.Post("/properties", handlers.Admin.CreateProperty)
				r.Get("/properties/{propertyID}", handlers.Admin.GetProperty)
				r.Put("/properties/{propertyID}", handlers.Admin.UpdateProperty)
				r.Delete("/properties/{propertyID}", handlers.Admin.DeleteProperty)

				r.Get("/contacts", handlers.Leads.GetContacts)
				r.Delete("/contacts/{leadID}", handlers.Leads.DeleteContact)
				r.Get("/newsletters", handlers.Leads.GetNewsletters)
				r.Delete("/newsletters/{leadID}", handlers.Leads.DeleteNewsletter)
				r.Get("/entrustments", handlers.Leads.GetEntrustments)
				r.Delete("/entrustments/{leadID}", handlers.Leads.DeleteEntrustment)
				r.Get("/property-requests", handlers.Leads.GetPropertyRequests)
				r.Delete("/property-requests/{leadID}", handlers.Leads.DeletePropertyRequest)

				r.Post("/governorates", handlers.Admin.CreateGovernorate)
				r.Put("/governorates/{governorateID}", handlers.Admin.UpdateGovernorate)
				r.Delete("/governorates/{governorateID}", handlers.Admin.DeleteGovernorate)

				r.Get("/directorates", handlers.Admin.GetDirectorates)
				r.Post("/directorates", handlers.Admin.CreateDirectorate)
				r.Put("/directorates/{directorateID}", handlers.Admin.UpdateDirectorate)
				r.Delete("/directorates/{directorateID}", handlers.Admin.DeleteDirectorate)

				r.Get("/property-types", handlers.Admin.GetPropertyTypes)
				r.Post("/property-types", handlers.Admin.CreatePropertyType)
				r.Put("/property-types/{propertyTypeID}", handlers.Admin.UpdatePropertyType)
				r.Delete("/property-types/{propertyTypeID}", handlers.Admin.DeletePropertyType)

				r.Put("/settings/{key}", handlers.Admin.UpsertSetting)

				r.Post("/upload", handlers.Upload.Upload)
				r.Post("/upload/multiple", handlers.Upload.UploadMultiple)
				r.Delete("/upload", handlers.Upload.Delete)
			})
		})
	})

	// Static serving of the resized image variants.
	fileServer := http.FileServer(http.Dir(uploadsDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
