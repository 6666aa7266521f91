package stubapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"internhub/internal/portal"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Post("/auth/login", h.Login)

	r.Group(func(rt chi.Router) {
		rt.Use(h.tokens.Authenticate)
		company := RequireRole(portal.RoleCompany)
		student := RequireRole(portal.RoleStudent)

		rt.Route("/programs", func(rt chi.Router) {
			rt.Get("/", h.ListPrograms)
			rt.Get("/{id}", h.GetProgram)
			rt.With(company).Post("/", h.CreateProgram)
			rt.With(company).Put("/{id}", h.UpdateProgram)
			rt.With(company).Delete("/{id}", h.DeleteProgram)
		})
		rt.Route("/mentors", func(rt chi.Router) {
			rt.Get("/", h.ListMentors)
			rt.Get("/{id}", h.GetMentor)
			rt.With(company).Post("/", h.CreateMentor)
			rt.With(company).Put("/{id}", h.UpdateMentor)
			rt.With(company).Delete("/{id}", h.DeleteMentor)
		})
		rt.Route("/applications", func(rt chi.Router) {
			rt.Get("/", h.ListApplications)
			rt.Get("/{id}", h.GetApplication)
			rt.With(student).Post("/", h.Apply)
			rt.With(company).Patch("/{id}/status", h.ReviewApplication)
		})
		rt.Route("/assessments", func(rt chi.Router) {
			rt.Get("/", h.ListAssessments)
			rt.Get("/{id}", h.GetAssessment)
			rt.With(company).Put("/{id}", h.UpdateAssessment)
		})
		rt.Route("/certificates", func(rt chi.Router) {
			rt.Get("/", h.ListCertificates)
			rt.Get("/{id}", h.GetCertificate)
			rt.With(company).Post("/", h.IssueCertificate)
		})
	})
	return r
}
