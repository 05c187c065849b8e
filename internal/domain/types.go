package domain

import "time"

// FoundationInfo is the read-only singleton describing the foundation. It is
// served by the collaborator API and rendered verbatim.
type FoundationInfo struct {
	Name         string              `json:"name"`
	Sigla        string              `json:"sigla"`
	NIT          string              `json:"nit"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	Department   string              `json:"department"`
	Country      string              `json:"country"`
	Email        string              `json:"email"`
	LogoURL      string              `json:"logo_url"`
	Mission      string              `json:"mission"`
	Vision       string              `json:"vision"`
	Values       []FoundationValue   `json:"values"`
	Services     []FoundationService `json:"services"`
	DonationInfo DonationInfo        `json:"donation_info"`
}

type FoundationValue struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FoundationService struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// DonationInfo carries the bank transfer alternative shown on the donate page.
type DonationInfo struct {
	BankName      string `json:"bank_name"`
	AccountType   string `json:"account_type"`
	AccountNumber string `json:"account_number"`
	Message       string `json:"message"`
}

// NewsItem is an article managed through the admin console.
type NewsItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Summary       string    `json:"summary,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Source        string    `json:"source"`
	SourceURL     string    `json:"source_url,omitempty"`
	Category      string    `json:"category"`
	PublishedDate time.Time `json:"published_date"`
	IsExternal    bool      `json:"is_external"`
	CreatedAt     time.Time `json:"created_at"`
}

// ExternalNewsItem is an aggregated headline from a government or press
// source. It is never created or edited here.
type ExternalNewsItem struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Date   string `json:"date,omitempty"`
}

type NewsSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Order    int    `json:"order"`
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Location    string    `json:"location,omitempty"`
	Year        int       `json:"year,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Donation statuses as reported by the collaborator. Transitions are owned by
// the payment provider; this code only observes them.
const (
	DonationStatusCreated   = "created"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
)

type Donation struct {
	ID         string    `json:"id"`
	PaymentID  string    `json:"paypal_payment_id,omitempty"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	DonorName  string    `json:"donor_name,omitempty"`
	DonorEmail string    `json:"donor_email,omitempty"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// DonationStats are aggregate numbers computed by the collaborator. They are
// never derived by summing client-held donation records.
type DonationStats struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalDonations int     `json:"total_donations"`
}
