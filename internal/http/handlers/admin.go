package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"funsomex-web/internal/admin"
	"funsomex-web/internal/donate"
	"funsomex-web/internal/funsomex"
	"funsomex-web/internal/middleware"
)

type dashboardView struct {
	*admin.Dashboard
	UnreadContacts int               `json:"unread_contacts"`
	DonationBadges map[string]string `json:"donation_badges"`
}

func newDashboardView(dash *admin.Dashboard) dashboardView {
	badges := make(map[string]string, len(dash.Donations))
	for _, d := range dash.Donations {
		badges[d.ID] = donate.StatusBadge(d.Status)
	}
	return dashboardView{
		Dashboard:      dash,
		UnreadContacts: dash.UnreadContacts(),
		DonationBadges: badges,
	}
}

// Dashboard loads the five managed collections in one go.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	a.reloadDashboard(w, r, http.StatusOK)
}

// reloadDashboard is the shared tail of every admin operation: the full
// refetch that stands in for fine-grained cache updates.
func (a *App) reloadDashboard(w http.ResponseWriter, r *http.Request, status int) {
	token := middleware.SessionTokenFromContext(r.Context())
	dash, err := a.Loader.Load(r.Context(), token)
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	a.json(w, status, newDashboardView(dash))
}

func (a *App) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req funsomex.NewsCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "título y contenido son obligatorios")
		return
	}
	if req.Category == "" {
		req.Category = "general"
	}
	token := middleware.SessionTokenFromContext(r.Context())
	if _, err := a.API.CreateNews(r.Context(), token, req); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusCreated)
}

// UpdateNews applies a partial edit; absent fields keep their stored values.
func (a *App) UpdateNews(w http.ResponseWriter, r *http.Request) {
	var req funsomex.NewsUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	if _, err := a.API.UpdateNews(r.Context(), token, chi.URLParam(r, "id"), req); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusOK)
}

func (a *App) DeleteNews(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFromContext(r.Context())
	if err := a.API.DeleteNews(r.Context(), token, chi.URLParam(r, "id")); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusOK)
}

func (a *App) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req funsomex.TeamMemberCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Role) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "nombre y cargo son obligatorios")
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	if _, err := a.API.CreateTeamMember(r.Context(), token, req); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusCreated)
}

func (a *App) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFromContext(r.Context())
	if err := a.API.DeleteTeamMember(r.Context(), token, chi.URLParam(r, "id")); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusOK)
}

func (a *App) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req funsomex.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.ImageURL) == "" || strings.TrimSpace(req.Category) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "título, descripción, imagen y categoría son obligatorios")
		return
	}
	token := middleware.SessionTokenFromContext(r.Context())
	if _, err := a.API.CreateProject(r.Context(), token, req); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusCreated)
}

func (a *App) DeleteProject(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFromContext(r.Context())
	if err := a.API.DeleteProject(r.Context(), token, chi.URLParam(r, "id")); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusOK)
}

// MarkContactRead flips a message to read and reloads. The transition is one
// way; repeated marks are harmless.
func (a *App) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionTokenFromContext(r.Context())
	if err := a.API.MarkContactRead(r.Context(), token, chi.URLParam(r, "id")); err != nil {
		a.apiError(w, r, err)
		return
	}
	a.reloadDashboard(w, r, http.StatusOK)
}

// RefreshExternalNews triggers the collaborator's re-scrape and waits for the
// headline list to change, bounded by the configured backoff window. The
// request context cancels the wait when the admin navigates away.
func (a *App) RefreshExternalNews(w http.ResponseWriter, r *http.Request) {
	items, err := a.Refresher.Refresh(r.Context())
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"external": items,
	})
}
