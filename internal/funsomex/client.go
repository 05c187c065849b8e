package funsomex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/infra"
)

// ErrMissingBaseURL indicates that the client was configured without the
// collaborator endpoint.
var ErrMissingBaseURL = errors.New("funsomex: api base url is required")

// Options configures the collaborator API client.
type Options struct {
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against the foundation's backend API. It owns no
// state beyond its configuration; authentication is per call through the
// bearer token handed in by the session layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}, nil
}

// do issues one JSON request against the collaborator. A 401 maps to
// domain.ErrUnauthorized so every caller shares the same session-invalid
// signal, a 404 to domain.ErrNotFound, and any other non-2xx status to
// domain.ErrCollaborator with the service's detail message attached.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("funsomex: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("funsomex: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("funsomex: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("funsomex: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 300:
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Detail != "" {
			return fmt.Errorf("funsomex: %s %s: %s: %w", method, path, detail.Detail, domain.ErrCollaborator)
		}
		return fmt.Errorf("funsomex: %s %s: status %d: %w", method, path, resp.StatusCode, domain.ErrCollaborator)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("funsomex: decode response: %w", err)
	}
	return nil
}

// FoundationInfo fetches the foundation's read-only metadata singleton.
func (c *Client) FoundationInfo(ctx context.Context) (*domain.FoundationInfo, error) {
	var info domain.FoundationInfo
	if err := c.do(ctx, http.MethodGet, "/foundation-info", "", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListNews returns internal articles, optionally filtered by category.
func (c *Client) ListNews(ctx context.Context, category string, limit int) ([]domain.NewsItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/news"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var items []domain.NewsItem
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetNews fetches a single article by id.
func (c *Client) GetNews(ctx context.Context, id string) (*domain.NewsItem, error) {
	var item domain.NewsItem
	if err := c.do(ctx, http.MethodGet, "/news/"+url.PathEscape(id), "", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateNews publishes a new article. Requires an admin token.
func (c *Client) CreateNews(ctx context.Context, token string, req NewsCreate) (*domain.NewsItem, error) {
	var item domain.NewsItem
	if err := c.do(ctx, http.MethodPost, "/news", token, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateNews patches an existing article. Requires an admin token.
func (c *Client) UpdateNews(ctx context.Context, token, id string, req NewsUpdate) (*domain.NewsItem, error) {
	var item domain.NewsItem
	if err := c.do(ctx, http.MethodPut, "/news/"+url.PathEscape(id), token, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteNews removes an article. Requires an admin token.
func (c *Client) DeleteNews(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/news/"+url.PathEscape(id), token, nil, nil)
}

// ExternalNews returns the aggregated headlines, optionally filtered by source.
func (c *Client) ExternalNews(ctx context.Context, source string) ([]domain.ExternalNewsItem, error) {
	path := "/external-news"
	if source != "" {
		path += "?source=" + url.QueryEscape(source)
	}
	var items []domain.ExternalNewsItem
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NewsSources lists the government and press sources the collaborator scrapes.
func (c *Client) NewsSources(ctx context.Context) ([]domain.NewsSource, error) {
	var sources []domain.NewsSource
	if err := c.do(ctx, http.MethodGet, "/news-sources", "", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// RefreshExternalNews asks the collaborator to start re-scraping its sources.
// The work happens in the collaborator's background; completion is observed by
// polling ExternalNews.
func (c *Client) RefreshExternalNews(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/external-news/refresh", "", nil, nil)
}

// ListTeam returns team members ordered by their display order.
func (c *Client) ListTeam(ctx context.Context) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	if err := c.do(ctx, http.MethodGet, "/team", "", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateTeamMember adds a member. Requires an admin token.
func (c *Client) CreateTeamMember(ctx context.Context, token string, req TeamMemberCreate) (*domain.TeamMember, error) {
	var member domain.TeamMember
	if err := c.do(ctx, http.MethodPost, "/team", token, req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// DeleteTeamMember removes a member. Requires an admin token.
func (c *Client) DeleteTeamMember(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/team/"+url.PathEscape(id), token, nil, nil)
}

// ListProjects returns projects, optionally filtered by category.
func (c *Client) ListProjects(ctx context.Context, category string) ([]domain.Project, error) {
	path := "/projects"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var projects []domain.Project
	if err := c.do(ctx, http.MethodGet, path, "", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject adds a project. Requires an admin token.
func (c *Client) CreateProject(ctx context.Context, token string, req ProjectCreate) (*domain.Project, error) {
	var project domain.Project
	if err := c.do(ctx, http.MethodPost, "/projects", token, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project. Requires an admin token.
func (c *Client) DeleteProject(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), token, nil, nil)
}

// SubmitContact files a public contact-form message.
func (c *Client) SubmitContact(ctx context.Context, req ContactCreate) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	if err := c.do(ctx, http.MethodPost, "/contact", "", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListContacts returns all contact messages. Requires an admin token.
func (c *Client) ListContacts(ctx context.Context, token string) ([]domain.ContactMessage, error) {
	var msgs []domain.ContactMessage
	if err := c.do(ctx, http.MethodGet, "/contact", token, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkContactRead flips a message to read. The transition is one way; marking
// an already-read message is harmless.
func (c *Client) MarkContactRead(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPut, "/contact/"+url.PathEscape(id)+"/read", token, nil, nil)
}

// ListDonations returns donation records. Requires an admin token.
func (c *Client) ListDonations(ctx context.Context, token string) ([]domain.Donation, error) {
	var donations []domain.Donation
	if err := c.do(ctx, http.MethodGet, "/donations", token, nil, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// DonationStats returns the collaborator-computed aggregates.
func (c *Client) DonationStats(ctx context.Context) (*domain.DonationStats, error) {
	var stats domain.DonationStats
	if err := c.do(ctx, http.MethodGet, "/donations/stats", "", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreatePayment asks the collaborator to open a payment order with the
// provider and returns the hosted approval URL the donor must visit.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentOrder, error) {
	var order PaymentOrder
	if err := c.do(ctx, http.MethodPost, "/donations/create-payment", "", req, &order); err != nil {
		return nil, err
	}
	if !order.Success || order.ApprovalURL == "" {
		return nil, fmt.Errorf("funsomex: create payment: no approval url: %w", domain.ErrCollaborator)
	}
	return &order, nil
}

// ExecutePayment finalizes a previously approved payment order.
func (c *Client) ExecutePayment(ctx context.Context, paymentID, payerID string) (*PaymentResult, error) {
	q := url.Values{}
	q.Set("payment_id", paymentID)
	q.Set("payer_id", payerID)
	var result PaymentResult
	if err := c.do(ctx, http.MethodPost, "/donations/execute-payment?"+q.Encode(), "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login exchanges admin credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.Token == "" {
		return "", domain.ErrUnauthorized
	}
	return resp.Token, nil
}

// VerifyToken checks a stored bearer token against the collaborator.
func (c *Client) VerifyToken(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}
	var resp verifyResponse
	if err := c.do(ctx, http.MethodGet, "/auth/verify", token, nil, &resp); err != nil {
		return err
	}
	if !resp.Valid {
		return domain.ErrUnauthorized
	}
	return nil
}
