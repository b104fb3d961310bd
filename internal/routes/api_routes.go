package routes

import (
	"ellp/voluntariado/internal/api"
	"ellp/voluntariado/internal/auth"
	"ellp/voluntariado/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers. Every guarded
// route is gated by its declared operation; the allow-lists live in one
// place (internal/auth/policy.go).
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		// Public
		v1.Post("/auth/login", handlers.Login())
		v1.Post("/auth/register", handlers.Register())

		// Authenticated
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Repo.Users, deps.Issuer))

			authed.Get("/auth/me", handlers.Me())
			authed.Put("/auth/me", handlers.UpdateMe())

			authed.Route("/voluntarios", func(vr chi.Router) {
				vr.With(middleware.RequireOperation(auth.OpVoluntarioCreate)).Post("/", handlers.CreateVoluntario())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioRead)).Get("/", handlers.ListVoluntarios())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioExport)).Get("/export/csv", handlers.ExportVoluntariosCSV())

				vr.With(middleware.RequireOperation(auth.OpVoluntarioRead)).Get("/{id}", handlers.GetVoluntario())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioUpdate)).Put("/{id}", handlers.UpdateVoluntario())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioDelete)).Delete("/{id}", handlers.DeleteVoluntario())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioAssociar)).Post("/{id}/assign", handlers.AssociarOficina())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioRead)).Get("/{id}/historico", handlers.HistoricoVoluntario())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioExport)).Get("/{id}/historico/csv", handlers.ExportHistoricoCSV())
				vr.With(middleware.RequireOperation(auth.OpVoluntarioExport)).Get("/{id}/termo", handlers.ExportTermoPDF())
			})

			authed.Route("/oficinas", func(or chi.Router) {
				or.With(middleware.RequireOperation(auth.OpOficinaCreate)).Post("/", handlers.CreateOficina())
				or.With(middleware.RequireOperation(auth.OpOficinaRead)).Get("/", handlers.ListOficinas())
				or.With(middleware.RequireOperation(auth.OpOficinaRead)).Get("/{id}", handlers.GetOficina())
				or.With(middleware.RequireOperation(auth.OpOficinaUpdate)).Put("/{id}", handlers.UpdateOficina())
				or.With(middleware.RequireOperation(auth.OpOficinaDelete)).Delete("/{id}", handlers.DeleteOficina())
			})

			authed.With(middleware.RequireOperation(auth.OpDashboardRead)).Get("/dashboard", handlers.Dashboard())
		})
	})
}
