package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"funsomex-web/internal/domain"
)

func TestHomeToleratesCollaboratorFailures(t *testing.T) {
	api := &fakeAPI{
		foundationInfoFn: func(ctx context.Context) (*domain.FoundationInfo, error) {
			return nil, domain.ErrCollaborator
		},
		listNewsFn: func(ctx context.Context, category string, limit int) ([]domain.NewsItem, error) {
			return nil, domain.ErrCollaborator
		},
	}
	app := newTestApp(api)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Home(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: the home page never errors out", rec.Code)
	}

	var view struct {
		Foundation domain.FoundationInfo `json:"foundation"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatal(err)
	}
	if view.Foundation.Sigla != "FUNSOMEX" || view.Foundation.NIT != "901936025-1" {
		t.Fatalf("fallback foundation info not served: %+v", view.Foundation)
	}
}

func TestHomeLimitsProjectsToThree(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(api)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Home(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if api.countCalls("ListNews") != 1 {
		t.Fatal("home should fetch the latest news")
	}
}

func TestNewsArticleRouteParam(t *testing.T) {
	api := &fakeAPI{}
	app := newTestApp(api)

	// Route through chi so the URL parameter resolves.
	r := chi.NewRouter()
	r.Get("/noticias/{id}", app.NewsArticle)

	req := httptest.NewRequest(http.MethodGet, "/noticias/nota-7", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var item domain.NewsItem
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatal(err)
	}
	if item.ID != "nota-7" {
		t.Fatalf("item id = %q, want the route parameter forwarded", item.ID)
	}
}
