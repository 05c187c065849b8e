package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"funsomex-web/internal/http/handlers"
	"funsomex-web/internal/infra"
	"funsomex-web/internal/middleware"
)

// NewRouter wires the full HTTP surface: public pages, the donation flow,
// auth, and the session-guarded admin console.
func NewRouter(cfg *infra.Config, app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(*app.Logger),
		middleware.Metrics,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Locale(cfg.DefaultLocale, lookup),
	)

	r.Get("/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Public pages
	r.Get("/", app.Home)
	r.Get("/nosotros", app.About)
	r.Get("/servicios", app.Services)
	r.Get("/proyectos", app.Projects)
	r.Get("/equipo", app.Team)
	r.Get("/noticias", app.News)
	r.Get("/noticias/{id}", app.NewsArticle)
	r.Get("/contacto", app.ContactPage)
	r.Get("/donar", app.DonatePage)
	r.Get("/login", app.LoginPage)

	// Form submissions share one rate limit bucket per client IP.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/contacto", app.SubmitContact)
		r.Post("/donar/checkout", app.DonateCheckout)
		r.Post("/login", app.Login)
	})

	r.Post("/logout", app.Logout)

	// Admin console. Every route below re-verifies the session token.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.SessionGuard(app.Sessions, app.API.VerifyToken))

		r.Get("/", app.Dashboard)

		r.Post("/news", app.CreateNews)
		r.Put("/news/{id}", app.UpdateNews)
		r.Delete("/news/{id}", app.DeleteNews)
		r.Post("/news/refresh", app.RefreshExternalNews)

		r.Post("/team", app.CreateTeamMember)
		r.Delete("/team/{id}", app.DeleteTeamMember)

		r.Post("/projects", app.CreateProject)
		r.Delete("/projects/{id}", app.DeleteProject)

		r.Put("/contact/{id}/read", app.MarkContactRead)
	})

	return r
}
