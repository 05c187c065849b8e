package session

import (
	"net/http"
	"time"
)

// pendingPaymentCookie correlates a donation return trip with the order this
// gateway actually created. It is short lived; one checkout at a time.
const pendingPaymentCookie = "funsomex_pending_payment"

const pendingPaymentTTL = time.Hour

// Manager owns the admin session token held by the browser. The token itself
// is opaque; it is minted and validated by the collaborator's auth endpoints.
// Lifecycle: set on login, cleared on logout or on any 401 observed anywhere.
type Manager struct {
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(cookieName string, ttl time.Duration, secure bool) *Manager {
	if cookieName == "" {
		cookieName = "funsomex_token"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{cookieName: cookieName, ttl: ttl, secure: secure}
}

// Token returns the stored bearer token, or "" when no session exists.
func (m *Manager) Token(r *http.Request) string {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Set stores the bearer token after a successful login.
func (m *Manager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear destroys the session. Used on logout and whenever the collaborator
// answers 401.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetPendingPayment records the provider payment id handed out at checkout so
// the return trip can be matched against it.
func (m *Manager) SetPendingPayment(w http.ResponseWriter, paymentID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     pendingPaymentCookie,
		Value:    paymentID,
		Path:     "/donar",
		MaxAge:   int(pendingPaymentTTL / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PendingPayment returns the recorded payment id, or "" when none is pending.
func (m *Manager) PendingPayment(r *http.Request) string {
	c, err := r.Cookie(pendingPaymentCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// ClearPendingPayment drops the correlation cookie once the return trip has
// been handled.
func (m *Manager) ClearPendingPayment(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     pendingPaymentCookie,
		Value:    "",
		Path:     "/donar",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
