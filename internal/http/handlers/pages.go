package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/middleware"
	"funsomex-web/internal/news"
)

// fallbackFoundationInfo keeps the public pages presentable when the
// collaborator is unreachable. Values mirror the foundation's registry data.
func fallbackFoundationInfo() *domain.FoundationInfo {
	return &domain.FoundationInfo{
		Name:       "FUNDACIÓN SOCIAL Y FINANCIERA MEXION",
		Sigla:      "FUNSOMEX",
		NIT:        "901936025-1",
		Address:    "Calle El Estanco DG 4 CR 7C-40",
		City:       "San Andrés de Sotavento",
		Department: "Córdoba",
		Country:    "Colombia",
		Email:      "administracion@funsomex.com",
	}
}

// foundationInfo fetches the singleton, degrading to the hard-coded default
// on failure so read-only pages never error out.
func (a *App) foundationInfo(r *http.Request) *domain.FoundationInfo {
	info, err := a.API.FoundationInfo(r.Context())
	if err != nil {
		a.Logger.Warn().Err(err).Msg("foundation info unavailable, using fallback")
		return fallbackFoundationInfo()
	}
	return info
}

type pageView struct {
	Locale     string                 `json:"locale"`
	Foundation *domain.FoundationInfo `json:"foundation"`
}

func (a *App) view(r *http.Request) pageView {
	return pageView{
		Locale:     middleware.LocaleFromContext(r.Context()),
		Foundation: a.foundationInfo(r),
	}
}

func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	type homeView struct {
		pageView
		News     []domain.NewsItem `json:"news"`
		Projects []domain.Project  `json:"projects"`
	}
	view := homeView{pageView: a.view(r)}
	if items, err := a.API.ListNews(r.Context(), "", 3); err == nil {
		view.News = items
	}
	if projects, err := a.API.ListProjects(r.Context(), ""); err == nil {
		if len(projects) > 3 {
			projects = projects[:3]
		}
		view.Projects = projects
	}
	a.json(w, http.StatusOK, view)
}

func (a *App) About(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.view(r))
}

func (a *App) Services(w http.ResponseWriter, r *http.Request) {
	view := a.view(r)
	a.json(w, http.StatusOK, map[string]any{
		"locale":   view.Locale,
		"services": view.Foundation.Services,
		"email":    view.Foundation.Email,
	})
}

func (a *App) Projects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.API.ListProjects(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"locale":   middleware.LocaleFromContext(r.Context()),
		"projects": projects,
	})
}

func (a *App) Team(w http.ResponseWriter, r *http.Request) {
	members, err := a.API.ListTeam(r.Context())
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"locale": middleware.LocaleFromContext(r.Context()),
		"team":   members,
	})
}

// News renders both the foundation's own articles and the aggregated external
// headlines. The external list is filtered in place; it is display data the
// collaborator already structured.
func (a *App) News(w http.ResponseWriter, r *http.Request) {
	internal, err := a.API.ListNews(r.Context(), r.URL.Query().Get("category"), 20)
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	external, err := a.API.ExternalNews(r.Context(), "")
	if err != nil {
		a.Logger.Warn().Err(err).Msg("external news unavailable")
		external = nil
	}
	sources, err := a.API.NewsSources(r.Context())
	if err != nil {
		sources = nil
	}
	a.json(w, http.StatusOK, map[string]any{
		"locale":   middleware.LocaleFromContext(r.Context()),
		"news":     internal,
		"external": news.FilterBySource(external, r.URL.Query().Get("source")),
		"sources":  sources,
	})
}

func (a *App) NewsArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := a.API.GetNews(r.Context(), id)
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, item)
}
