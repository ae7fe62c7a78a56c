package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts every endpoint on a fresh chi router. The guard middleware
// (the bearer-session check) wraps everything except /healthz and /login.
func (s *Server) Routes(guard func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Post("/login", s.Login)

	r.Group(func(r chi.Router) {
		r.Use(guard)

		r.Post("/logout", s.Logout)
		r.Get("/vehicles", s.ListVehicles)
		r.Get("/stats", s.GetStatistics)
		r.Get("/export", s.GetExport)

		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)
			r.Get("/{id}", s.GetTrip)
			r.Put("/{id}", s.UpdateTrip)
			r.Delete("/{id}", s.DeleteTrip)
		})
	})

	return r
}
