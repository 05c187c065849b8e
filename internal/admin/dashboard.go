package admin

import (
	"context"

	"golang.org/x/sync/errgroup"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/infra"
)

// Directory is the slice of the collaborator API the admin console manages.
// List operations on news, team and projects are public reads; contacts and
// donations require the admin token.
type Directory interface {
	ListNews(ctx context.Context, category string, limit int) ([]domain.NewsItem, error)
	ListContacts(ctx context.Context, token string) ([]domain.ContactMessage, error)
	ListTeam(ctx context.Context) ([]domain.TeamMember, error)
	ListProjects(ctx context.Context, category string) ([]domain.Project, error)
	ListDonations(ctx context.Context, token string) ([]domain.Donation, error)
}

// Dashboard holds the five managed collections, fetched together. After any
// mutation the whole dashboard is reloaded rather than patched in place:
// consistency by reload, deliberately trading requests for simplicity.
type Dashboard struct {
	News      []domain.NewsItem       `json:"news"`
	Contacts  []domain.ContactMessage `json:"contacts"`
	Team      []domain.TeamMember     `json:"team"`
	Projects  []domain.Project        `json:"projects"`
	Donations []domain.Donation       `json:"donations"`
}

// UnreadContacts recomputes the unread count from the fetched list.
func (d *Dashboard) UnreadContacts() int {
	n := 0
	for _, msg := range d.Contacts {
		if !msg.Read {
			n++
		}
	}
	return n
}

// Loader fetches the dashboard collections from the collaborator.
type Loader struct {
	svc    Directory
	logger *infra.Logger
}

func NewLoader(svc Directory, logger *infra.Logger) *Loader {
	return &Loader{svc: svc, logger: logger}
}

// Load fetches all five collections concurrently and waits for every one.
// The result is all-or-nothing: a failure anywhere fails the load, and a 401
// from any of the authenticated calls surfaces as domain.ErrUnauthorized so
// the caller treats the whole session as invalid.
func (l *Loader) Load(ctx context.Context, token string) (*Dashboard, error) {
	var dash Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := l.svc.ListNews(ctx, "", 0)
		dash.News = items
		return err
	})
	g.Go(func() error {
		msgs, err := l.svc.ListContacts(ctx, token)
		dash.Contacts = msgs
		return err
	})
	g.Go(func() error {
		members, err := l.svc.ListTeam(ctx)
		dash.Team = members
		return err
	})
	g.Go(func() error {
		projects, err := l.svc.ListProjects(ctx, "")
		dash.Projects = projects
		return err
	})
	g.Go(func() error {
		donations, err := l.svc.ListDonations(ctx, token)
		dash.Donations = donations
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
