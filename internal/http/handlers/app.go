package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"funsomex-web/internal/admin"
	"funsomex-web/internal/domain"
	"funsomex-web/internal/funsomex"
	"funsomex-web/internal/infra"
	"funsomex-web/internal/middleware"
	"funsomex-web/internal/news"
	"funsomex-web/internal/session"
)

// Collaborator is everything the handlers need from the foundation's backend
// API. *funsomex.Client satisfies it; tests substitute fakes.
type Collaborator interface {
	FoundationInfo(ctx context.Context) (*domain.FoundationInfo, error)
	ListNews(ctx context.Context, category string, limit int) ([]domain.NewsItem, error)
	GetNews(ctx context.Context, id string) (*domain.NewsItem, error)
	CreateNews(ctx context.Context, token string, req funsomex.NewsCreate) (*domain.NewsItem, error)
	UpdateNews(ctx context.Context, token, id string, req funsomex.NewsUpdate) (*domain.NewsItem, error)
	DeleteNews(ctx context.Context, token, id string) error
	ExternalNews(ctx context.Context, source string) ([]domain.ExternalNewsItem, error)
	NewsSources(ctx context.Context) ([]domain.NewsSource, error)
	RefreshExternalNews(ctx context.Context) error
	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	CreateTeamMember(ctx context.Context, token string, req funsomex.TeamMemberCreate) (*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, token, id string) error
	ListProjects(ctx context.Context, category string) ([]domain.Project, error)
	CreateProject(ctx context.Context, token string, req funsomex.ProjectCreate) (*domain.Project, error)
	DeleteProject(ctx context.Context, token, id string) error
	SubmitContact(ctx context.Context, req funsomex.ContactCreate) (*domain.ContactMessage, error)
	ListContacts(ctx context.Context, token string) ([]domain.ContactMessage, error)
	MarkContactRead(ctx context.Context, token, id string) error
	ListDonations(ctx context.Context, token string) ([]domain.Donation, error)
	DonationStats(ctx context.Context) (*domain.DonationStats, error)
	CreatePayment(ctx context.Context, req funsomex.PaymentRequest) (*funsomex.PaymentOrder, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (*funsomex.PaymentResult, error)
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) error
}

// App wires the handlers to their collaborators.
type App struct {
	API       Collaborator
	Sessions  *session.Manager
	Logger    *infra.Logger
	Loader    *admin.Loader
	Refresher *news.Refresher
}

func NewApp(api Collaborator, sessions *session.Manager, logger *infra.Logger, newsRefreshMaxWait time.Duration) *App {
	return &App{
		API:       api,
		Sessions:  sessions,
		Logger:    logger,
		Loader:    admin.NewLoader(api, logger),
		Refresher: news.NewRefresher(api, logger, newsRefreshMaxWait),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"error": code, "message": message})
}

// apiError translates collaborator failures uniformly: a 401 anywhere kills
// the session, a 404 passes through, anything else degrades to a 502 with
// the previous UI state intact on the client.
func (a *App) apiError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		middleware.DenySession(w, r, a.Sessions)
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "recurso no encontrado")
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("collaborator call failed")
		a.error(w, http.StatusBadGateway, "collaborator_unavailable", "servicio no disponible, intenta de nuevo")
	}
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
