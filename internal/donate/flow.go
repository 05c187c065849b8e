package donate

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/funsomex"
	"funsomex-web/internal/infra"
)

// PresetAmounts are the six suggested donation amounts, in USD.
var PresetAmounts = []float64{10, 25, 50, 100, 250, 500}

// Currency is fixed; the provider checkout is configured for USD.
const Currency = "USD"

// ErrInvalidAmount rejects progression to the confirmation step. No network
// call is made when the resolved amount is below the minimum.
var ErrInvalidAmount = errors.New("donate: amount must be at least 1")

// State tracks where a donation interaction is.
type State string

const (
	StateAmountSelect    State = "AMOUNT_SELECT"
	StateConfirm         State = "CONFIRM"
	StateRedirected      State = "REDIRECTED"
	StateReturnSuccess   State = "RETURN_SUCCESS"
	StateReturnCancelled State = "RETURN_CANCELLED"
)

// Selection models the amount picker. A preset and a custom amount are
// mutually exclusive: entering one clears the other, and a positive custom
// amount always wins.
type Selection struct {
	preset float64
	custom float64
}

// ChoosePreset selects one of the suggested amounts and clears any custom input.
func (s *Selection) ChoosePreset(amount float64) {
	s.preset = amount
	s.custom = 0
}

// EnterCustom records a typed amount and clears the preset selection.
func (s *Selection) EnterCustom(amount float64) {
	s.custom = amount
	s.preset = 0
}

// Amount resolves the effective donation amount.
func (s Selection) Amount() float64 {
	if s.custom > 0 {
		return s.custom
	}
	return s.preset
}

// Preset reports the currently selected preset, 0 when none.
func (s Selection) Preset() float64 { return s.preset }

// Donor carries the optional identity fields captured alongside the amount.
type Donor struct {
	Name    string
	Email   string
	Message string
}

// PaymentService is the slice of the collaborator API the flow depends on.
type PaymentService interface {
	CreatePayment(ctx context.Context, req funsomex.PaymentRequest) (*funsomex.PaymentOrder, error)
	ExecutePayment(ctx context.Context, paymentID, payerID string) (*funsomex.PaymentResult, error)
	DonationStats(ctx context.Context) (*domain.DonationStats, error)
}

// Flow orchestrates one donation interaction:
// AMOUNT_SELECT -> CONFIRM -> REDIRECTED, then on the return navigation
// RETURN_SUCCESS or RETURN_CANCELLED. Settlement itself belongs to the
// payment provider; the flow only requests it and re-reads the aggregates.
type Flow struct {
	svc    PaymentService
	logger *infra.Logger

	state     State
	Selection Selection
	Donor     Donor
}

func NewFlow(svc PaymentService, logger *infra.Logger) *Flow {
	return &Flow{svc: svc, logger: logger, state: StateAmountSelect}
}

// State returns the current flow state.
func (f *Flow) State() State { return f.state }

// Proceed moves from amount selection to confirmation. An effective amount
// below 1 is rejected and the state is left unchanged.
func (f *Flow) Proceed() error {
	if f.Selection.Amount() < 1 {
		return ErrInvalidAmount
	}
	f.state = StateConfirm
	return nil
}

// Checkout creates the payment order and returns it so the caller can send
// the donor to the provider's approval URL. On collaborator failure the state
// is left where it was so the donor can simply retry.
func (f *Flow) Checkout(ctx context.Context) (*funsomex.PaymentOrder, error) {
	if err := f.Proceed(); err != nil {
		return nil, err
	}
	req := funsomex.PaymentRequest{
		Amount:     f.Selection.Amount(),
		Currency:   Currency,
		DonorName:  optional(f.Donor.Name),
		DonorEmail: optional(f.Donor.Email),
		Message:    optional(f.Donor.Message),
	}
	order, err := f.svc.CreatePayment(ctx, req)
	if err != nil {
		return nil, err
	}
	f.state = StateRedirected
	f.logger.Info().
		Str("payment_id", order.PaymentID).
		Float64("amount", req.Amount).
		Msg("donation order created, redirecting to provider")
	return order, nil
}

// Return is the outcome signalled by the provider through query parameters on
// the return navigation to /donar.
type Return struct {
	Success   bool
	Cancelled bool
	PaymentID string
	PayerID   string
}

// ParseReturn reads the provider's return-trip query parameters. Parameter
// names follow the provider convention (paymentId, PayerID).
func ParseReturn(q url.Values) Return {
	return Return{
		Success:   q.Get("success") == "true",
		Cancelled: q.Get("cancelled") == "true",
		PaymentID: q.Get("paymentId"),
		PayerID:   q.Get("PayerID"),
	}
}

// IsReturn reports whether the navigation carries any provider outcome at all.
func (r Return) IsReturn() bool { return r.Success || r.Cancelled }

// Outcome summarizes the handled return trip for presentation.
type Outcome struct {
	Completed bool
	Cancelled bool
	Message   string
	Stats     *domain.DonationStats
}

// HandleReturn settles the return navigation. A cancellation never issues a
// capture call. A success with both correlation identifiers triggers the
// execute-payment call and, when that succeeds, a stats refetch — aggregates
// always come from the collaborator, never from local summation. pendingID is
// the payment id recorded at checkout; a mismatch is logged but capture still
// proceeds, matching the provider-trusting behavior of the original flow.
func (f *Flow) HandleReturn(ctx context.Context, ret Return, pendingID string) (*Outcome, error) {
	if ret.Cancelled {
		f.state = StateReturnCancelled
		return &Outcome{Cancelled: true, Message: "Donación cancelada"}, nil
	}
	if !ret.Success || ret.PaymentID == "" || ret.PayerID == "" {
		return &Outcome{}, nil
	}
	if pendingID != "" && pendingID != ret.PaymentID {
		f.logger.Warn().
			Str("pending_payment_id", pendingID).
			Str("returned_payment_id", ret.PaymentID).
			Msg("return parameters do not match the order created in this session")
	}
	result, err := f.svc.ExecutePayment(ctx, ret.PaymentID, ret.PayerID)
	if err != nil {
		// The donation keeps whatever status the collaborator left it in.
		return nil, err
	}
	if !result.Success {
		return &Outcome{Message: result.Message}, nil
	}
	f.state = StateReturnSuccess
	outcome := &Outcome{
		Completed: true,
		Message:   "¡Gracias por tu donación! Tu apoyo transforma vidas.",
	}
	if result.Message != "" {
		outcome.Message = result.Message
	}
	stats, err := f.svc.DonationStats(ctx)
	if err != nil {
		f.logger.Error().Err(err).Msg("stats refetch after capture failed")
		return outcome, nil
	}
	outcome.Stats = stats
	return outcome, nil
}

// StatusBadge maps a collaborator-owned donation status to its presentation
// class: created is still pending, completed succeeded, anything else failed.
func StatusBadge(status string) string {
	switch status {
	case domain.DonationStatusCreated:
		return "pending"
	case domain.DonationStatusCompleted:
		return "success"
	default:
		return "failure"
	}
}

// ParseAmount converts a typed custom amount. Blank input means no custom
// amount; malformed input resolves to 0 and fails the minimum check later.
func ParseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
