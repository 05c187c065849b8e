package handlers

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/funsomex"
	"funsomex-web/internal/session"
)

// fakeAPI implements Collaborator with overridable behavior per method and a
// call log so tests can assert on the sequence of collaborator requests.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	foundationInfoFn  func(ctx context.Context) (*domain.FoundationInfo, error)
	listNewsFn        func(ctx context.Context, category string, limit int) ([]domain.NewsItem, error)
	createNewsFn      func(ctx context.Context, token string, req funsomex.NewsCreate) (*domain.NewsItem, error)
	deleteNewsFn      func(ctx context.Context, token, id string) error
	listContactsFn    func(ctx context.Context, token string) ([]domain.ContactMessage, error)
	markContactReadFn func(ctx context.Context, token, id string) error
	listDonationsFn   func(ctx context.Context, token string) ([]domain.Donation, error)
	donationStatsFn   func(ctx context.Context) (*domain.DonationStats, error)
	createPaymentFn   func(ctx context.Context, req funsomex.PaymentRequest) (*funsomex.PaymentOrder, error)
	executePaymentFn  func(ctx context.Context, paymentID, payerID string) (*funsomex.PaymentResult, error)
	loginFn           func(ctx context.Context, email, password string) (string, error)
	verifyTokenFn     func(ctx context.Context, token string) error
	submitContactFn   func(ctx context.Context, req funsomex.ContactCreate) (*domain.ContactMessage, error)
	deleteProjectFn   func(ctx context.Context, token, id string) error
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeAPI) countCalls(name string) int {
	n := 0
	for _, c := range f.callLog() {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) FoundationInfo(ctx context.Context) (*domain.FoundationInfo, error) {
	f.record("FoundationInfo")
	if f.foundationInfoFn != nil {
		return f.foundationInfoFn(ctx)
	}
	return &domain.FoundationInfo{Sigla: "FUNSOMEX"}, nil
}

func (f *fakeAPI) ListNews(ctx context.Context, category string, limit int) ([]domain.NewsItem, error) {
	f.record("ListNews")
	if f.listNewsFn != nil {
		return f.listNewsFn(ctx, category, limit)
	}
	return nil, nil
}

func (f *fakeAPI) GetNews(ctx context.Context, id string) (*domain.NewsItem, error) {
	f.record("GetNews")
	return &domain.NewsItem{ID: id}, nil
}

func (f *fakeAPI) CreateNews(ctx context.Context, token string, req funsomex.NewsCreate) (*domain.NewsItem, error) {
	f.record("CreateNews")
	if f.createNewsFn != nil {
		return f.createNewsFn(ctx, token, req)
	}
	return &domain.NewsItem{ID: "n-1", Title: req.Title}, nil
}

func (f *fakeAPI) UpdateNews(ctx context.Context, token, id string, req funsomex.NewsUpdate) (*domain.NewsItem, error) {
	f.record("UpdateNews")
	return &domain.NewsItem{ID: id}, nil
}

func (f *fakeAPI) DeleteNews(ctx context.Context, token, id string) error {
	f.record("DeleteNews")
	if f.deleteNewsFn != nil {
		return f.deleteNewsFn(ctx, token, id)
	}
	return nil
}

func (f *fakeAPI) ExternalNews(ctx context.Context, source string) ([]domain.ExternalNewsItem, error) {
	f.record("ExternalNews")
	return nil, nil
}

func (f *fakeAPI) NewsSources(ctx context.Context) ([]domain.NewsSource, error) {
	f.record("NewsSources")
	return nil, nil
}

func (f *fakeAPI) RefreshExternalNews(ctx context.Context) error {
	f.record("RefreshExternalNews")
	return nil
}

func (f *fakeAPI) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	f.record("ListTeam")
	return nil, nil
}

func (f *fakeAPI) CreateTeamMember(ctx context.Context, token string, req funsomex.TeamMemberCreate) (*domain.TeamMember, error) {
	f.record("CreateTeamMember")
	return &domain.TeamMember{ID: "t-1", Name: req.Name}, nil
}

func (f *fakeAPI) DeleteTeamMember(ctx context.Context, token, id string) error {
	f.record("DeleteTeamMember")
	return nil
}

func (f *fakeAPI) ListProjects(ctx context.Context, category string) ([]domain.Project, error) {
	f.record("ListProjects")
	return nil, nil
}

func (f *fakeAPI) CreateProject(ctx context.Context, token string, req funsomex.ProjectCreate) (*domain.Project, error) {
	f.record("CreateProject")
	return &domain.Project{ID: "p-1", Title: req.Title}, nil
}

func (f *fakeAPI) DeleteProject(ctx context.Context, token, id string) error {
	f.record("DeleteProject")
	if f.deleteProjectFn != nil {
		return f.deleteProjectFn(ctx, token, id)
	}
	return nil
}

func (f *fakeAPI) SubmitContact(ctx context.Context, req funsomex.ContactCreate) (*domain.ContactMessage, error) {
	f.record("SubmitContact")
	if f.submitContactFn != nil {
		return f.submitContactFn(ctx, req)
	}
	return &domain.ContactMessage{ID: "c-1", Name: req.Name}, nil
}

func (f *fakeAPI) ListContacts(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	f.record("ListContacts")
	if f.listContactsFn != nil {
		return f.listContactsFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeAPI) MarkContactRead(ctx context.Context, token, id string) error {
	f.record("MarkContactRead")
	if f.markContactReadFn != nil {
		return f.markContactReadFn(ctx, token, id)
	}
	return nil
}

func (f *fakeAPI) ListDonations(ctx context.Context, token string) ([]domain.Donation, error) {
	f.record("ListDonations")
	if f.listDonationsFn != nil {
		return f.listDonationsFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeAPI) DonationStats(ctx context.Context) (*domain.DonationStats, error) {
	f.record("DonationStats")
	if f.donationStatsFn != nil {
		return f.donationStatsFn(ctx)
	}
	return &domain.DonationStats{}, nil
}

func (f *fakeAPI) CreatePayment(ctx context.Context, req funsomex.PaymentRequest) (*funsomex.PaymentOrder, error) {
	f.record("CreatePayment")
	if f.createPaymentFn != nil {
		return f.createPaymentFn(ctx, req)
	}
	return &funsomex.PaymentOrder{Success: true, PaymentID: "PAY-1", ApprovalURL: "https://provider.test/approve"}, nil
}

func (f *fakeAPI) ExecutePayment(ctx context.Context, paymentID, payerID string) (*funsomex.PaymentResult, error) {
	f.record("ExecutePayment")
	if f.executePaymentFn != nil {
		return f.executePaymentFn(ctx, paymentID, payerID)
	}
	return &funsomex.PaymentResult{Success: true}, nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.record("Login")
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return "tok-123", nil
}

func (f *fakeAPI) VerifyToken(ctx context.Context, token string) error {
	f.record("VerifyToken")
	if f.verifyTokenFn != nil {
		return f.verifyTokenFn(ctx, token)
	}
	return nil
}

func newTestApp(api *fakeAPI) *App {
	logger := zerolog.New(io.Discard)
	sessions := session.NewManager("funsomex_token", time.Hour, false)
	return NewApp(api, sessions, &logger, 100*time.Millisecond)
}
