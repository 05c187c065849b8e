package funsomex

// Request payloads sent to the collaborator API. Shapes mirror the service's
// own models; optional fields are pointers so that absent values serialize as
// JSON null rather than empty strings.

type NewsCreate struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Summary  string `json:"summary,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Category string `json:"category"`
}

type NewsUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	Category *string `json:"category,omitempty"`
}

type TeamMemberCreate struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Order    int    `json:"order"`
}

type ProjectCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Location    string `json:"location,omitempty"`
	Year        int    `json:"year,omitempty"`
}

type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// PaymentRequest creates a payment order with the provider via the
// collaborator. Donor identity is optional and sent as null when missing.
type PaymentRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	DonorName  *string `json:"donor_name"`
	DonorEmail *string `json:"donor_email"`
	Message    *string `json:"message"`
}

// PaymentOrder is the collaborator's answer to a create-payment call. The
// approval URL points at the provider-hosted checkout page.
type PaymentOrder struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"payment_id"`
	ApprovalURL string `json:"approval_url"`
	DonationID  string `json:"donation_id"`
}

// PaymentResult reports the outcome of an execute-payment call.
type PaymentResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"payment_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type verifyResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
